package client

import (
	"context"

	"ruyatech/internal/models"
)

// MembersClient talks to the member/profile endpoints. The public directory
// list is unauthenticated; profile changes and moderation are not.
type MembersClient struct {
	api *Client
}

// MemberPatch is a partial profile update. Nil fields are left untouched.
type MemberPatch struct {
	Name    *string
	City    *string
	Country *string
	Bio     *models.Bio
	Status  *models.MemberStatus
}

// Apply copies the set fields onto m.
func (p MemberPatch) Apply(m *models.Member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.City != nil {
		m.City = *p.City
	}
	if p.Country != nil {
		m.Country = *p.Country
	}
	if p.Bio != nil {
		m.Bio = p.Bio
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}

func (p MemberPatch) form(file *Attachment) (*Form, error) {
	form := NewForm()
	if p.Name != nil {
		form.Set("name", *p.Name)
	}
	if p.City != nil {
		form.Set("city", *p.City)
	}
	if p.Country != nil {
		form.Set("country", *p.Country)
	}
	if p.Bio != nil {
		if err := form.SetJSON("bio", p.Bio); err != nil {
			return nil, err
		}
	}
	if p.Status != nil {
		form.Set("status", string(*p.Status))
	}
	form.SetFile(file)
	return form, nil
}

// LoginResult is the backend's response to a credential check.
type LoginResult struct {
	Token  string        `json:"token"`
	Member models.Member `json:"member"`
}

// List fetches the full member directory.
func (m *MembersClient) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := m.api.getJSON(ctx, "/api/all-members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Get fetches one member profile. A 404 surfaces as an APIError.
func (m *MembersClient) Get(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	if err := m.api.getJSON(ctx, "/api/members/"+id, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Register submits the wizard payload. The bearer token is attached when one
// is available (admin-created accounts) and omitted for the public wizard.
// Validation failures come back as an APIError carrying per-field messages.
func (m *MembersClient) Register(ctx context.Context, member *models.Member, password string, file *Attachment) (*models.Member, error) {
	form := NewForm().
		Set("name", member.Name).
		Set("email", member.Email).
		Set("password", password).
		Set("role", string(member.Role)).
		SetOptional("city", member.City).
		SetOptional("country", member.Country).
		SetFile(file)
	if member.Bio != nil {
		if err := form.SetJSON("bio", member.Bio); err != nil {
			return nil, err
		}
	}
	var created models.Member
	if err := m.api.postMultipart(ctx, "/api/register", form, authOptional, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends a partial profile update as POST multipart, authenticated.
func (m *MembersClient) Update(ctx context.Context, id string, patch MemberPatch, file *Attachment) (*models.Member, error) {
	form, err := patch.form(file)
	if err != nil {
		return nil, err
	}
	var updated models.Member
	if err := m.api.postMultipart(ctx, "/api/profile/"+id, form, authRequired, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the profile permanently.
func (m *MembersClient) Delete(ctx context.Context, id string) (*models.Member, error) {
	var deleted models.Member
	if err := m.api.deleteJSON(ctx, "/api/profile/"+id, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Login exchanges credentials for a backend bearer token.
func (m *MembersClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := m.api.postJSON(ctx, "/api/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Approve admits a pending or suspended member to the directory.
func (m *MembersClient) Approve(ctx context.Context, member *models.Member) error {
	return m.transition(ctx, member, models.MemberStatusApproved)
}

// Suspend removes an approved member from the public directory.
func (m *MembersClient) Suspend(ctx context.Context, member *models.Member) error {
	return m.transition(ctx, member, models.MemberStatusSuspended)
}

// Reject declines a pending registration.
func (m *MembersClient) Reject(ctx context.Context, member *models.Member) error {
	return m.transition(ctx, member, models.MemberStatusRejected)
}

func (m *MembersClient) transition(ctx context.Context, member *models.Member, status models.MemberStatus) error {
	member.Status = status
	updated, err := m.Update(ctx, member.ID, MemberPatch{Status: &status}, nil)
	if err != nil {
		return err
	}
	*member = *updated
	return nil
}
