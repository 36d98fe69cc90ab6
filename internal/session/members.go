package session

import (
	"context"
	"errors"

	"ruyatech/internal/client"
	"ruyatech/internal/events"
	"ruyatech/internal/i18n"
	"ruyatech/internal/models"
	"ruyatech/internal/utils/logger"
)

// MemberAPI is the slice of the members client a session needs.
type MemberAPI interface {
	Get(ctx context.Context, id string) (*models.Member, error)
	Register(ctx context.Context, member *models.Member, password string, file *client.Attachment) (*models.Member, error)
	Update(ctx context.Context, id string, patch client.MemberPatch, file *client.Attachment) (*models.Member, error)
	Delete(ctx context.Context, id string) (*models.Member, error)
	Approve(ctx context.Context, member *models.Member) error
	Suspend(ctx context.Context, member *models.Member) error
	Reject(ctx context.Context, member *models.Member) error
}

// MemberSession holds one focused member profile: the registration wizard, a
// profile edit, or a moderation detail view.
type MemberSession struct {
	state
	deps
	api MemberAPI
	log *logger.Logger

	member *models.Member
}

// NewMemberSession seeds a registration flow with a pending profile; call
// Load to focus an existing member instead.
func NewMemberSession(api MemberAPI, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *MemberSession {
	return &MemberSession{
		deps:   deps{creds: creds, msgs: msgs, locale: locale},
		api:    api,
		log:    logger.New("member-session"),
		member: &models.Member{Status: models.MemberStatusPending},
	}
}

// Member is the focused entity.
func (s *MemberSession) Member() *models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member
}

// Load focuses an existing member.
func (s *MemberSession) Load(ctx context.Context, id string) error {
	return s.run("load", func() error {
		member, err := s.api.Get(ctx, id)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.member = member
		s.mu.Unlock()
		return nil
	})
}

// Register submits the wizard payload for the focused profile. Unlike other
// actions, a structured backend validation error is returned as-is so the
// form can render per-field messages.
func (s *MemberSession) Register(ctx context.Context, password string, file *client.Attachment) error {
	return s.run("register", func() error {
		created, err := s.api.Register(ctx, s.Member(), password, file)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.member = created
		s.mu.Unlock()
		return nil
	})
}

// Save updates the focused profile. Requires a token.
func (s *MemberSession) Save(ctx context.Context, patch client.MemberPatch, file *client.Attachment) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run("save", func() error {
		updated, err := s.api.Update(ctx, s.Member().ID, patch, file)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.member = updated
		s.mu.Unlock()
		return nil
	})
}

// Delete removes the focused profile.
func (s *MemberSession) Delete(ctx context.Context) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run("delete", func() error {
		_, err := s.api.Delete(ctx, s.Member().ID)
		if err == nil {
			events.Emit("members.deleted", s.Member().ID)
		}
		return err
	})
}

// Approve admits the focused member to the directory.
func (s *MemberSession) Approve(ctx context.Context) error {
	return s.transition(ctx, "approve", s.api.Approve)
}

// Suspend removes the focused member from the public directory.
func (s *MemberSession) Suspend(ctx context.Context) error {
	return s.transition(ctx, "suspend", s.api.Suspend)
}

// Reject declines the focused registration.
func (s *MemberSession) Reject(ctx context.Context) error {
	return s.transition(ctx, "reject", s.api.Reject)
}

func (s *MemberSession) transition(ctx context.Context, op string, fn func(context.Context, *models.Member) error) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run(op, func() error {
		if err := fn(ctx, s.Member()); err != nil {
			return err
		}
		events.Emit("members."+op, s.Member().ID)
		return nil
	})
}

func (s *MemberSession) run(op string, fn func() error) error {
	s.begin()
	defer s.finish()

	if err := fn(); err != nil {
		_ = s.log.Error("member %s failed: %v", err, op)
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
			s.fail(s.message("errors.validation"))
		} else {
			s.fail(s.message("errors.generic"))
		}
		return err
	}
	s.clearErr()
	return nil
}
