package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ruyatech/internal/models"
)

func testClient(t *testing.T, creds CredentialProvider, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		BaseURL:     srv.URL,
		Locale:      "ar",
		Credentials: creds,
		HTTPClient:  srv.Client(),
	})
}

func TestListSendsLocaleAndDecodes(t *testing.T) {
	t.Parallel()

	c := testClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ads" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept-Language"); got != "ar" {
			t.Errorf("expected Accept-Language ar, got %q", got)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("public list must not carry a token")
		}
		_ = json.NewEncoder(w).Encode([]models.Ad{
			{Base: models.Base{ID: "a1"}, Title: "Sale", Status: models.AdStatusPending},
		})
	})

	ads, err := c.Ads.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != "a1" || ads[0].Status != models.AdStatusPending {
		t.Fatalf("unexpected ads %+v", ads)
	}
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	t.Parallel()

	c := testClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid input","errors":{"email":["already taken"]}}`))
	})

	_, err := c.Ads.List(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "invalid input" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
	if got := apiErr.Fields["email"]; len(got) != 1 || got[0] != "already taken" {
		t.Fatalf("expected structured field errors, got %+v", apiErr.Fields)
	}
}

func TestUnparseableErrorBodyFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	c := testClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.Posts.List(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text message, got %q", apiErr.Message)
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such member"}`))
	})

	_, err := c.Members.Get(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound, got %v", err)
	}
	if IsNotFound(errors.New("other")) {
		t.Fatal("IsNotFound must be false for unrelated errors")
	}
}

func TestAuthedCallWithoutTokenNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	var hits int32
	c := testClient(t, StaticCredentials(""), func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	ad := models.Ad{Base: models.Base{ID: "a1"}}
	if err := c.Ads.Publish(context.Background(), &ad); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if _, err := c.Posts.Delete(context.Background(), "p1"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("expected zero requests, server saw %d", got)
	}
}

func TestTransitionSendsStatusPatchAndAdoptsServerCopy(t *testing.T) {
	t.Parallel()

	c := testClient(t, StaticCredentials("tok-123"), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/ads/a1" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected Authorization %q", got)
		}
		var patch map[string]string
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			t.Errorf("decode patch: %v", err)
		}
		if len(patch) != 1 || patch["status"] != "published" {
			t.Errorf("expected a status-only patch, got %v", patch)
		}
		_ = json.NewEncoder(w).Encode(models.Ad{
			Base:   models.Base{ID: "a1"},
			Title:  "Server truth",
			Status: models.AdStatusPublished,
		})
	})

	ad := models.Ad{Base: models.Base{ID: "a1"}, Title: "Local copy", Status: models.AdStatusPending}
	if err := c.Ads.Publish(context.Background(), &ad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ad.Status != models.AdStatusPublished || ad.Title != "Server truth" {
		t.Fatalf("expected server copy to replace local state, got %+v", ad)
	}
}

func TestRegisterEncodesBioAsJSONField(t *testing.T) {
	t.Parallel()

	c := testClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("expected multipart body, got %q", r.Header.Get("Content-Type"))
			return
		}
		fields := map[string]string{}
		var fileName string
		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("read part: %v", err)
				return
			}
			data, _ := io.ReadAll(part)
			if part.FileName() != "" {
				fileName = part.FileName()
				continue
			}
			fields[part.FormName()] = string(data)
		}

		if fields["role"] != "company" {
			t.Errorf("expected role company, got %q", fields["role"])
		}
		var bio models.Bio
		if err := json.Unmarshal([]byte(fields["bio"]), &bio); err != nil {
			t.Errorf("bio must be a JSON string field: %v", err)
		} else if bio.Kind != models.BioCompany || bio.Company == nil || !bio.Company.Hiring {
			t.Errorf("unexpected bio payload %+v", bio)
		}
		if fileName != "logo.png" {
			t.Errorf("expected file part logo.png, got %q", fileName)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Member{Base: models.Base{ID: "m1"}})
	})

	member := &models.Member{
		Name:  "Globex",
		Email: "hr@globex.example",
		Role:  models.MemberRoleCompany,
		Bio: &models.Bio{
			Kind:    models.BioCompany,
			Company: &models.CompanyInfo{LegalName: "Globex LLC", Hiring: true},
		},
	}
	created, err := c.Members.Register(context.Background(), member, "secret-pass", &Attachment{
		Field:   "image",
		Name:    "logo.png",
		Content: []byte{0x89, 0x50},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "m1" {
		t.Fatalf("expected created member, got %+v", created)
	}
}

func TestFormEncodesBooleansAsDigits(t *testing.T) {
	t.Parallel()

	form := NewForm().SetBool("hiring", true).SetBool("remote", false).SetInt("size", 40)
	body, contentType, err := form.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	mr := multipart.NewReader(body, params["boundary"])
	got := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		data, _ := io.ReadAll(part)
		got[part.FormName()] = string(data)
	}
	if got["hiring"] != "1" || got["remote"] != "0" {
		t.Fatalf("expected 1/0 booleans, got %v", got)
	}
	if got["size"] != "40" {
		t.Fatalf("expected size 40, got %q", got["size"])
	}
}
