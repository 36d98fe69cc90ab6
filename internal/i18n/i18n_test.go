package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.yaml")
	catalog := `en:
  errors.generic: "Something went wrong."
  banners.saved: "Saved."
ar:
  errors.generic: "حدث خطأ ما."
`
	if err := os.WriteFile(path, []byte(catalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path, "en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := c.T("ar", "errors.generic"); got != "حدث خطأ ما." {
		t.Fatalf("unexpected ar message %q", got)
	}
	// Missing in ar falls back to the default locale.
	if got := c.T("ar", "banners.saved"); got != "Saved." {
		t.Fatalf("expected fallback text, got %q", got)
	}
	// Missing everywhere resolves to the key so the gap is visible.
	if got := c.T("en", "banners.unknown"); got != "banners.unknown" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestLoadRejectsMissingFallbackLocale(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.yaml")
	if err := os.WriteFile(path, []byte("fr:\n  a: b\n"), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := Load(path, "en"); err == nil {
		t.Fatal("expected an error for a catalog without the fallback locale")
	}
}

func TestDefaultCatalogCoversCoreKeys(t *testing.T) {
	t.Parallel()

	c := Default()
	for _, key := range []string{"errors.generic", "errors.validation", "errors.no_token"} {
		if got := c.T("en", key); got == key {
			t.Fatalf("built-in catalog is missing %s", key)
		}
	}
}
