package session

import (
	"context"

	"ruyatech/internal/client"
	"ruyatech/internal/events"
	"ruyatech/internal/i18n"
	"ruyatech/internal/models"
	"ruyatech/internal/utils/logger"
)

// PostAPI is the slice of the posts client a session needs.
type PostAPI interface {
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post, file *client.Attachment) (*models.Post, error)
	Update(ctx context.Context, id string, patch client.PostPatch, file *client.Attachment) (*models.Post, error)
	Delete(ctx context.Context, id string) (*models.Post, error)
	Publish(ctx context.Context, post *models.Post) error
	Unpublish(ctx context.Context, post *models.Post) error
	Reject(ctx context.Context, post *models.Post) error
}

// PostSession holds one focused post for an edit or detail flow.
type PostSession struct {
	state
	deps
	api PostAPI
	log *logger.Logger

	post *models.Post
}

// NewPostSession seeds a creation flow; posts start life as author-private
// drafts. Call Load to focus an existing post instead.
func NewPostSession(api PostAPI, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *PostSession {
	return &PostSession{
		deps: deps{creds: creds, msgs: msgs, locale: locale},
		api:  api,
		log:  logger.New("post-session"),
		post: &models.Post{Status: models.PostStatusDraft},
	}
}

// Post is the focused entity.
func (s *PostSession) Post() *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.post
}

// Load focuses an existing post.
func (s *PostSession) Load(ctx context.Context, id string) error {
	return s.run("load", func() error {
		post, err := s.api.Get(ctx, id)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.post = post
		s.mu.Unlock()
		return nil
	})
}

// Save persists the focused post: update when it already has an id, create
// otherwise. Creation requires a token; the guard runs before the client is
// touched.
func (s *PostSession) Save(ctx context.Context, patch client.PostPatch, file *client.Attachment) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run("save", func() error {
		s.mu.Lock()
		current := s.post
		s.mu.Unlock()

		var saved *models.Post
		var err error
		if current.ID == "" {
			patch.Apply(current)
			saved, err = s.api.Create(ctx, current, file)
		} else {
			saved, err = s.api.Update(ctx, current.ID, patch, file)
		}
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.post = saved
		s.mu.Unlock()
		return nil
	})
}

// Delete removes the focused post.
func (s *PostSession) Delete(ctx context.Context) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run("delete", func() error {
		_, err := s.api.Delete(ctx, s.Post().ID)
		if err == nil {
			events.Emit("posts.deleted", s.Post().ID)
		}
		return err
	})
}

// Publish moves the focused post to published.
func (s *PostSession) Publish(ctx context.Context) error {
	return s.transition(ctx, "publish", s.api.Publish)
}

// Unpublish takes the focused post off the site.
func (s *PostSession) Unpublish(ctx context.Context) error {
	return s.transition(ctx, "unpublish", s.api.Unpublish)
}

// Reject declines the focused post.
func (s *PostSession) Reject(ctx context.Context) error {
	return s.transition(ctx, "reject", s.api.Reject)
}

func (s *PostSession) transition(ctx context.Context, op string, fn func(context.Context, *models.Post) error) error {
	if err := s.requireToken(ctx); err != nil {
		s.fail(s.message("errors.no_token"))
		return err
	}
	return s.run(op, func() error {
		if err := fn(ctx, s.Post()); err != nil {
			return err
		}
		events.Emit("posts."+op, s.Post().ID)
		return nil
	})
}

func (s *PostSession) run(op string, fn func() error) error {
	s.begin()
	defer s.finish()

	if err := fn(); err != nil {
		_ = s.log.Error("post %s failed: %v", err, op)
		s.fail(s.message("errors.generic"))
		return err
	}
	s.clearErr()
	return nil
}
