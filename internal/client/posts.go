package client

import (
	"context"

	"ruyatech/internal/models"
)

// PostsClient talks to the /api/posts endpoints. Updates go over POST
// multipart so an image can be re-uploaded with the same call.
type PostsClient struct {
	api *Client
}

// PostPatch is a partial post update. Nil fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
	Status  *models.PostStatus
}

// Apply copies the set fields onto post.
func (p PostPatch) Apply(post *models.Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
}

func (p PostPatch) form(file *Attachment) *Form {
	form := NewForm()
	if p.Title != nil {
		form.Set("title", *p.Title)
	}
	if p.Content != nil {
		form.Set("content", *p.Content)
	}
	if p.Status != nil {
		form.Set("status", string(*p.Status))
	}
	form.SetFile(file)
	return form
}

// List fetches the full post collection for everyone; ownership scoping for
// non-admin viewers happens during aggregation, not here.
func (p *PostsClient) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := p.api.getJSON(ctx, "/api/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches one post. A 404 surfaces as an APIError; use IsNotFound.
func (p *PostsClient) Get(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := p.api.getJSON(ctx, "/api/posts/"+id, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create submits a new post as its author. Requires a bearer token; posts
// start life as drafts.
func (p *PostsClient) Create(ctx context.Context, post *models.Post, file *Attachment) (*models.Post, error) {
	form := NewForm().
		Set("title", post.Title).
		Set("content", post.Content).
		SetFile(file)
	var created models.Post
	if err := p.api.postMultipart(ctx, "/api/posts", form, authRequired, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends a partial update as POST multipart, authenticated.
func (p *PostsClient) Update(ctx context.Context, id string, patch PostPatch, file *Attachment) (*models.Post, error) {
	var updated models.Post
	if err := p.api.postMultipart(ctx, "/api/posts/"+id, patch.form(file), authRequired, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the post permanently.
func (p *PostsClient) Delete(ctx context.Context, id string) (*models.Post, error) {
	var deleted models.Post
	if err := p.api.deleteJSON(ctx, "/api/posts/"+id, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Publish moves the post to published.
func (p *PostsClient) Publish(ctx context.Context, post *models.Post) error {
	return p.transition(ctx, post, models.PostStatusPublished)
}

// Unpublish takes a published post off the site without deleting it.
func (p *PostsClient) Unpublish(ctx context.Context, post *models.Post) error {
	return p.transition(ctx, post, models.PostStatusUnpublished)
}

// Reject declines a pending post. Rejected posts can be reviewed and
// published again later.
func (p *PostsClient) Reject(ctx context.Context, post *models.Post) error {
	return p.transition(ctx, post, models.PostStatusRejected)
}

func (p *PostsClient) transition(ctx context.Context, post *models.Post, status models.PostStatus) error {
	post.Status = status
	updated, err := p.Update(ctx, post.ID, PostPatch{Status: &status}, nil)
	if err != nil {
		return err
	}
	*post = *updated
	return nil
}
