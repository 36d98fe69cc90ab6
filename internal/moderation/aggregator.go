package moderation

import "ruyatech/internal/models"

// BucketAll is the tab holding the whole post-scope list. It is the list
// itself, not the union of the other buckets: a record with a missing or
// unrecognized status appears here and nowhere else.
const BucketAll = "all"

// Buckets partitions one fetched collection by exact status match. It is
// rebuilt from scratch on every fetch; nothing is maintained incrementally,
// so bucket membership can never go stale.
type Buckets[T any] struct {
	All []T

	order    []string
	byStatus map[string][]T
}

// Partition buckets items by statusOf using the given tab order.
func Partition[T any](items []T, order []string, statusOf func(T) string) Buckets[T] {
	b := Buckets[T]{
		All:      items,
		order:    order,
		byStatus: make(map[string][]T, len(order)),
	}
	for _, name := range order {
		b.byStatus[name] = []T{}
	}
	for _, item := range items {
		status := statusOf(item)
		if _, ok := b.byStatus[status]; ok {
			b.byStatus[status] = append(b.byStatus[status], item)
		}
	}
	return b
}

// Bucket returns the named bucket; "all" (or empty) is the full list.
func (b Buckets[T]) Bucket(name string) []T {
	if name == "" || name == BucketAll {
		return b.All
	}
	return b.byStatus[name]
}

// Tabs returns the bucket names in display order, "all" first.
func (b Buckets[T]) Tabs() []string {
	tabs := make([]string, 0, len(b.order)+1)
	tabs = append(tabs, BucketAll)
	return append(tabs, b.order...)
}

// Counts returns the badge count for every tab.
func (b Buckets[T]) Counts() map[string]int {
	counts := make(map[string]int, len(b.order)+1)
	counts[BucketAll] = len(b.All)
	for _, name := range b.order {
		counts[name] = len(b.byStatus[name])
	}
	return counts
}

func adTabs() []string {
	statuses := models.AdStatuses()
	tabs := make([]string, len(statuses))
	for i, s := range statuses {
		tabs[i] = string(s)
	}
	return tabs
}

func postTabs() []string {
	statuses := models.PostStatuses()
	tabs := make([]string, len(statuses))
	for i, s := range statuses {
		tabs[i] = string(s)
	}
	return tabs
}

func memberTabs() []string {
	statuses := models.MemberStatuses()
	tabs := make([]string, len(statuses))
	for i, s := range statuses {
		tabs[i] = string(s)
	}
	return tabs
}

// AdBuckets partitions the ads table.
func AdBuckets(ads []models.Ad) Buckets[models.Ad] {
	return Partition(ads, adTabs(), func(a models.Ad) string { return string(a.Status) })
}

// PostBuckets partitions the posts table. Non-admin viewers see only their
// own posts; the scope is applied before bucketing so "all" already means
// "all of mine".
func PostBuckets(posts []models.Post, viewerID string, admin bool) Buckets[models.Post] {
	scoped := posts
	if !admin {
		scoped = make([]models.Post, 0, len(posts))
		for _, p := range posts {
			if p.UserID == viewerID {
				scoped = append(scoped, p)
			}
		}
	}
	return Partition(scoped, postTabs(), func(p models.Post) string { return string(p.Status) })
}

// MemberBuckets partitions the members table.
func MemberBuckets(members []models.Member) Buckets[models.Member] {
	return Partition(members, memberTabs(), func(m models.Member) string { return string(m.Status) })
}
