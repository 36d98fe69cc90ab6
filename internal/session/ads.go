package session

import (
	"context"

	"ruyatech/internal/client"
	"ruyatech/internal/events"
	"ruyatech/internal/i18n"
	"ruyatech/internal/models"
	"ruyatech/internal/utils/logger"
)

// AdAPI is the slice of the ads client a session needs. Narrow on purpose so
// tests can count calls.
type AdAPI interface {
	Get(ctx context.Context, id string) (*models.Ad, error)
	Create(ctx context.Context, ad *models.Ad, file *client.Attachment) (*models.Ad, error)
	Update(ctx context.Context, id string, patch client.AdPatch) (*models.Ad, error)
	Delete(ctx context.Context, id string) (*models.Ad, error)
	Publish(ctx context.Context, ad *models.Ad) error
	Unpublish(ctx context.Context, ad *models.Ad) error
	Reject(ctx context.Context, ad *models.Ad) error
}

// AdSession holds one focused ad for an edit or detail flow.
type AdSession struct {
	state
	deps
	api AdAPI
	log *logger.Logger

	ad *models.Ad
}

// NewAdSession seeds a creation flow with a default-shaped ad; call Load to
// focus an existing one instead.
func NewAdSession(api AdAPI, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *AdSession {
	return &AdSession{
		deps: deps{creds: creds, msgs: msgs, locale: locale},
		api:  api,
		log:  logger.New("ad-session"),
		ad:   &models.Ad{Status: models.AdStatusPending},
	}
}

// Ad is the focused entity.
func (s *AdSession) Ad() *models.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ad
}

// Load focuses an existing ad.
func (s *AdSession) Load(ctx context.Context, id string) error {
	return s.run("load", func() error {
		ad, err := s.api.Get(ctx, id)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.ad = ad
		s.mu.Unlock()
		return nil
	})
}

// Save persists the focused ad: update when it already has an id, create
// otherwise. The server's copy replaces local state either way.
func (s *AdSession) Save(ctx context.Context, patch client.AdPatch, file *client.Attachment) error {
	return s.run("save", func() error {
		s.mu.Lock()
		current := s.ad
		s.mu.Unlock()

		var saved *models.Ad
		var err error
		if current.ID == "" {
			patch.Apply(current)
			saved, err = s.api.Create(ctx, current, file)
		} else {
			saved, err = s.api.Update(ctx, current.ID, patch)
		}
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.ad = saved
		s.mu.Unlock()
		return nil
	})
}

// Delete removes the focused ad. Requires a token.
func (s *AdSession) Delete(ctx context.Context) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run("delete", func() error {
		_, err := s.api.Delete(ctx, s.Ad().ID)
		if err == nil {
			events.Emit("ads.deleted", s.Ad().ID)
		}
		return err
	})
}

// Publish moves the focused ad to published. Refuses to touch the network
// without a bearer token.
func (s *AdSession) Publish(ctx context.Context) error {
	return s.transition(ctx, "publish", s.api.Publish)
}

// Unpublish takes the focused ad off the site.
func (s *AdSession) Unpublish(ctx context.Context) error {
	return s.transition(ctx, "unpublish", s.api.Unpublish)
}

// Reject declines the focused ad.
func (s *AdSession) Reject(ctx context.Context) error {
	return s.transition(ctx, "reject", s.api.Reject)
}

func (s *AdSession) transition(ctx context.Context, op string, fn func(context.Context, *models.Ad) error) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run(op, func() error {
		if err := fn(ctx, s.Ad()); err != nil {
			return err
		}
		events.Emit("ads."+op, s.Ad().ID)
		return nil
	})
}

func (s *AdSession) run(op string, fn func() error) error {
	s.begin()
	defer s.finish()

	if err := fn(); err != nil {
		_ = s.log.Error("ad %s failed: %v", err, op)
		s.fail(s.message("errors.generic"))
		return err
	}
	s.clearErr()
	return nil
}
