package search

import (
	"testing"

	"ruyatech/internal/models"
	"ruyatech/internal/moderation"
)

func TestMatchTerm(t *testing.T) {
	t.Parallel()

	if !MatchTerm("", "anything") {
		t.Fatal("empty term must match everything")
	}
	if !MatchTerm("ACME", "Acme Rockets", "pending") {
		t.Fatal("match must be case-insensitive")
	}
	if MatchTerm("acme", "Globex", "published") {
		t.Fatal("expected no match")
	}
}

func TestFilterMatchesAnyConfiguredField(t *testing.T) {
	t.Parallel()

	ads := []models.Ad{
		{Base: models.Base{ID: "a1"}, Title: "Summer sale", Status: models.AdStatusPending},
		{Base: models.Base{ID: "a2"}, Title: "Hiring", Location: "Riyadh", Status: models.AdStatusPublished},
		{Base: models.Base{ID: "a3"}, Title: "Workshop", Status: models.AdStatusPending},
	}

	byLocation := Filter(ads, "riyadh", AdFields)
	if len(byLocation) != 1 || byLocation[0].ID != "a2" {
		t.Fatalf("expected a2 by location, got %v", byLocation)
	}

	byStatus := Filter(ads, "pending", AdFields)
	if len(byStatus) != 2 {
		t.Fatalf("expected 2 pending matches by status label, got %d", len(byStatus))
	}
}

// Narrowing by term then picking a bucket gives the same rows as picking the
// bucket first and then narrowing.
func TestFilterCommutesWithBucketSelection(t *testing.T) {
	t.Parallel()

	ads := []models.Ad{
		{Base: models.Base{ID: "a1"}, Title: "Summer sale", Status: models.AdStatusPending},
		{Base: models.Base{ID: "a2"}, Title: "Summer camp", Status: models.AdStatusPublished},
		{Base: models.Base{ID: "a3"}, Title: "Winter sale", Status: models.AdStatusPending},
		{Base: models.Base{ID: "a4"}, Title: "Summer school", Status: models.AdStatusPending},
	}

	bucketThenFilter := Filter(moderation.AdBuckets(ads).Bucket("pending"), "summer", AdFields)
	filterThenBucket := moderation.AdBuckets(Filter(ads, "summer", AdFields)).Bucket("pending")

	if len(bucketThenFilter) != len(filterThenBucket) {
		t.Fatalf("order changed the result: %d vs %d rows", len(bucketThenFilter), len(filterThenBucket))
	}
	for i := range bucketThenFilter {
		if bucketThenFilter[i].ID != filterThenBucket[i].ID {
			t.Fatalf("row %d differs: %s vs %s", i, bucketThenFilter[i].ID, filterThenBucket[i].ID)
		}
	}
	if len(bucketThenFilter) != 2 {
		t.Fatalf("expected 2 pending summer ads, got %d", len(bucketThenFilter))
	}
}

func TestPageSlice(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	first := PageSlice(items, 1, 3)
	if len(first) != 3 || first[0] != 1 {
		t.Fatalf("unexpected first page %v", first)
	}
	last := PageSlice(items, 3, 3)
	if len(last) != 1 || last[0] != 7 {
		t.Fatalf("unexpected last page %v", last)
	}

	// Out-of-range pages yield an empty slice, not an error and not nil.
	beyond := PageSlice(items, 4, 3)
	if beyond == nil || len(beyond) != 0 {
		t.Fatalf("expected empty page, got %v", beyond)
	}
	if got := PageSlice([]int{}, 1, 3); got == nil || len(got) != 0 {
		t.Fatalf("expected empty page for empty input, got %v", got)
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 12, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestTableStateResetsPageOnChange(t *testing.T) {
	t.Parallel()

	s := NewTableState()
	if s.Bucket != "all" || s.Page != 1 {
		t.Fatalf("unexpected initial state %+v", s)
	}

	s.SetPage(4)
	s.SetBucket("pending")
	if s.Page != 1 {
		t.Fatalf("switching tabs must reset the page, got %d", s.Page)
	}

	s.SetPage(3)
	s.SetBucket("pending") // same tab, no reset
	if s.Page != 3 {
		t.Fatalf("re-selecting the same tab must keep the page, got %d", s.Page)
	}

	s.SetTerm("acme")
	if s.Page != 1 {
		t.Fatalf("typing a new term must reset the page, got %d", s.Page)
	}
	s.SetPage(2)
	s.SetTerm("acme") // unchanged term, no reset
	if s.Page != 2 {
		t.Fatalf("an unchanged term must keep the page, got %d", s.Page)
	}

	s.SetPage(0)
	if s.Page != 1 {
		t.Fatalf("pages below 1 must clamp, got %d", s.Page)
	}
}
