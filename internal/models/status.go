package models

// AdStatus is the moderation state of an ad. The zero value means the
// backend never assigned one; that is a real case, not an error.
type AdStatus string

const (
	AdStatusDraft       AdStatus = "draft"
	AdStatusPending     AdStatus = "pending"
	AdStatusPublished   AdStatus = "published"
	AdStatusUnpublished AdStatus = "unpublished"
	AdStatusRejected    AdStatus = "rejected"
)

// AdStatuses lists the ad statuses in dashboard tab order.
func AdStatuses() []AdStatus {
	return []AdStatus{
		AdStatusDraft,
		AdStatusPending,
		AdStatusPublished,
		AdStatusUnpublished,
		AdStatusRejected,
	}
}

// Known reports whether s is one of the closed enum values.
func (s AdStatus) Known() bool {
	switch s {
	case AdStatusDraft, AdStatusPending, AdStatusPublished, AdStatusUnpublished, AdStatusRejected:
		return true
	default:
		return false
	}
}

// Effective is the status used when choosing which action buttons to render:
// a missing status reads as unpublished. Aggregation never uses this; bucket
// membership is always exact match on the raw value.
func (s AdStatus) Effective() AdStatus {
	if s == "" {
		return AdStatusUnpublished
	}
	return s
}

// PostStatus is the moderation state of a post. Drafts are author-private.
type PostStatus string

const (
	PostStatusDraft       PostStatus = "draft"
	PostStatusPending     PostStatus = "pending"
	PostStatusPublished   PostStatus = "published"
	PostStatusUnpublished PostStatus = "unpublished"
	PostStatusRejected    PostStatus = "rejected"
)

// PostStatuses lists the post statuses in dashboard tab order.
func PostStatuses() []PostStatus {
	return []PostStatus{
		PostStatusDraft,
		PostStatusPending,
		PostStatusPublished,
		PostStatusUnpublished,
		PostStatusRejected,
	}
}

// Known reports whether s is one of the closed enum values.
func (s PostStatus) Known() bool {
	switch s {
	case PostStatusDraft, PostStatusPending, PostStatusPublished, PostStatusUnpublished, PostStatusRejected:
		return true
	default:
		return false
	}
}

// Effective is the render-time status; a missing one reads as unpublished.
func (s PostStatus) Effective() PostStatus {
	if s == "" {
		return PostStatusUnpublished
	}
	return s
}

// MemberStatus is the moderation state of a directory profile. Approved is
// the member analogue of published; there is no draft.
type MemberStatus string

const (
	MemberStatusPending   MemberStatus = "pending"
	MemberStatusApproved  MemberStatus = "approved"
	MemberStatusSuspended MemberStatus = "suspended"
	MemberStatusRejected  MemberStatus = "rejected"
)

// MemberStatuses lists the member statuses in dashboard tab order.
func MemberStatuses() []MemberStatus {
	return []MemberStatus{
		MemberStatusPending,
		MemberStatusApproved,
		MemberStatusSuspended,
		MemberStatusRejected,
	}
}

// Known reports whether s is one of the closed enum values.
func (s MemberStatus) Known() bool {
	switch s {
	case MemberStatusPending, MemberStatusApproved, MemberStatusSuspended, MemberStatusRejected:
		return true
	default:
		return false
	}
}
