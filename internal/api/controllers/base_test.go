package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"ruyatech/internal/api/validator"
	"ruyatech/internal/models"
	"ruyatech/internal/moderation"
	"ruyatech/internal/search"
)

func testAds(n int) []models.Ad {
	ads := make([]models.Ad, 0, n)
	for i := 0; i < n; i++ {
		status := models.AdStatusPending
		if i%2 == 0 {
			status = models.AdStatusPublished
		}
		ads = append(ads, models.Ad{
			Base:   models.Base{ID: fmt.Sprintf("a%d", i)},
			Title:  fmt.Sprintf("Ad number %d", i),
			Status: status,
		})
	}
	return ads
}

func newAdTableController(ads []models.Ad, action func(ctx context.Context, name, id string) error) *TableController[models.Ad] {
	if action == nil {
		action = func(context.Context, string, string) error { return nil }
	}
	return NewTableController(
		"ads",
		search.AdminPageSize,
		func(context.Context) ([]models.Ad, error) { return ads, nil },
		func(items []models.Ad, _ Viewer) moderation.Buckets[models.Ad] {
			return moderation.AdBuckets(items)
		},
		search.AdFields,
		action,
	)
}

func doTable(t *testing.T, tc *TableController[models.Ad], query string) TableResponse[models.Ad] {
	t.Helper()
	e := echo.New()
	e.Validator = validator.NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/admin/ads?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := tc.Table(c); err != nil {
		t.Fatalf("table: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var resp TableResponse[models.Ad]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestTableDefaultsToAllFirstPage(t *testing.T) {
	t.Parallel()

	tc := newAdTableController(testAds(25), nil)
	resp := doTable(t, tc, "")

	if resp.Tab != "all" || resp.Page != 1 {
		t.Fatalf("unexpected defaults %+v", resp)
	}
	if len(resp.Rows) != search.AdminPageSize {
		t.Fatalf("expected one page of %d rows, got %d", search.AdminPageSize, len(resp.Rows))
	}
	if resp.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", resp.TotalPages)
	}
	if resp.Tabs["all"] != 25 || resp.Tabs["published"] != 13 || resp.Tabs["pending"] != 12 {
		t.Fatalf("unexpected tab counts %v", resp.Tabs)
	}
}

func TestTableTabAndSearchNarrowRows(t *testing.T) {
	t.Parallel()

	tc := newAdTableController(testAds(25), nil)

	resp := doTable(t, tc, "tab=pending")
	if len(resp.Rows) != 10 || resp.TotalPages != 2 {
		t.Fatalf("unexpected pending page %+v", resp)
	}
	for _, row := range resp.Rows {
		if row.Status != models.AdStatusPending {
			t.Fatalf("foreign status in pending tab: %+v", row)
		}
	}

	resp = doTable(t, tc, "tab=pending&q=number+1")
	// "number 1" matches 1, 11, 13, 15, 17, 19 among pending ads.
	for _, row := range resp.Rows {
		if !strings.Contains(row.Title, "number 1") {
			t.Fatalf("row escaped the filter: %+v", row)
		}
	}
}

func TestTablePagePastEndIsEmpty(t *testing.T) {
	t.Parallel()

	tc := newAdTableController(testAds(5), nil)
	resp := doTable(t, tc, "page=4")

	if resp.Rows == nil || len(resp.Rows) != 0 {
		t.Fatalf("expected an empty rows array, got %v", resp.Rows)
	}
	if resp.TotalPages != 1 {
		t.Fatalf("expected total_pages 1 got %d", resp.TotalPages)
	}
}

func TestBulkReportsPartialProgress(t *testing.T) {
	t.Parallel()

	var attempted []string
	tc := newAdTableController(testAds(5), func(_ context.Context, name, id string) error {
		attempted = append(attempted, id)
		if id == "a2" {
			return errors.New("backend said no")
		}
		return nil
	})

	e := echo.New()
	e.Validator = validator.NewValidator()
	body := `{"action":"publish","ids":["a1","a2","a3"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/ads/bulk", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := tc.Bulk(c); err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d", rec.Code)
	}

	var resp struct {
		Completed []string `json:"completed"`
		FailedID  string   `json:"failed_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Completed) != 1 || resp.Completed[0] != "a1" {
		t.Fatalf("unexpected completed %v", resp.Completed)
	}
	if resp.FailedID != "a2" {
		t.Fatalf("unexpected failed id %q", resp.FailedID)
	}
	// a3 must never be attempted once a2 fails.
	if len(attempted) != 2 {
		t.Fatalf("expected attempts to stop at a2, got %v", attempted)
	}
}
