package models

// Ad is a site-wide advertisement. Submission is public; everything after
// that is a moderation decision.
type Ad struct {
	Base
	Title    string   `json:"title" validate:"required,min=2"`
	Image    string   `json:"image,omitempty"`
	URL      string   `json:"url,omitempty" validate:"omitempty,url"`
	Location string   `json:"location,omitempty"`
	UserID   string   `json:"user_id,omitempty"`
	Status   AdStatus `json:"status,omitempty" validate:"omitempty,ad_status"`
}

// Post is a member-authored article.
type Post struct {
	Base
	Title      string     `json:"title" validate:"required,min=2"`
	Content    string     `json:"content"`
	Image      string     `json:"image,omitempty"`
	UserID     string     `json:"user_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Status     PostStatus `json:"status,omitempty" validate:"omitempty,post_status"`
}

// Member is a directory profile: professional, student, or company.
type Member struct {
	Base
	Name    string       `json:"name" validate:"required,min=2"`
	Email   string       `json:"email" validate:"required,email"`
	Role    MemberRole   `json:"role" validate:"required,member_role"`
	City    string       `json:"city,omitempty"`
	Country string       `json:"country,omitempty"`
	Image   string       `json:"image,omitempty"`
	Status  MemberStatus `json:"status,omitempty" validate:"omitempty,member_status"`
	Bio     *Bio         `json:"bio,omitempty"`
}

// IsAdmin reports whether the member moderates the directory.
func (m Member) IsAdmin() bool {
	return m.Role == MemberRoleAdmin
}
