package client

import (
	"context"

	"ruyatech/internal/models"
)

// AdsClient talks to the /api/ads endpoints. Listing and submission are
// public; moderation and deletion need a bearer token.
type AdsClient struct {
	api *Client
}

// AdPatch is a partial ad update. Nil fields are left untouched.
type AdPatch struct {
	Title    *string          `json:"title,omitempty"`
	URL      *string          `json:"url,omitempty"`
	Location *string          `json:"location,omitempty"`
	Status   *models.AdStatus `json:"status,omitempty"`
}

// Apply copies the set fields onto ad.
func (p AdPatch) Apply(ad *models.Ad) {
	if p.Title != nil {
		ad.Title = *p.Title
	}
	if p.URL != nil {
		ad.URL = *p.URL
	}
	if p.Location != nil {
		ad.Location = *p.Location
	}
	if p.Status != nil {
		ad.Status = *p.Status
	}
}

// List fetches the full ad collection. Views re-derive buckets from this on
// every call; nothing is cached.
func (a *AdsClient) List(ctx context.Context) ([]models.Ad, error) {
	var ads []models.Ad
	if err := a.api.getJSON(ctx, "/api/ads", &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// Get fetches one ad. A 404 surfaces as an APIError; use IsNotFound.
func (a *AdsClient) Get(ctx context.Context, id string) (*models.Ad, error) {
	var ad models.Ad
	if err := a.api.getJSON(ctx, "/api/ads/"+id, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

// Create submits a new ad. No token: ad submission is open to the public.
// The backend decides the initial status (pending).
func (a *AdsClient) Create(ctx context.Context, ad *models.Ad, file *Attachment) (*models.Ad, error) {
	form := NewForm().
		Set("title", ad.Title).
		SetOptional("url", ad.URL).
		SetOptional("location", ad.Location).
		SetFile(file)
	var created models.Ad
	if err := a.api.postMultipart(ctx, "/api/ads", form, authNone, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends a partial update as JSON over PUT.
func (a *AdsClient) Update(ctx context.Context, id string, patch AdPatch) (*models.Ad, error) {
	var updated models.Ad
	if err := a.api.putJSON(ctx, "/api/ads/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the ad permanently. Deletion is a hard delete, not a
// status.
func (a *AdsClient) Delete(ctx context.Context, id string) (*models.Ad, error) {
	var deleted models.Ad
	if err := a.api.deleteJSON(ctx, "/api/ads/"+id, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Publish moves the ad to published. Like every transition helper it sets
// the local copy first, then sends a status patch; the caller re-fetches
// afterwards, so the local write is only a convenience.
func (a *AdsClient) Publish(ctx context.Context, ad *models.Ad) error {
	return a.transition(ctx, ad, models.AdStatusPublished)
}

// Unpublish takes a published ad off the site without deleting it.
func (a *AdsClient) Unpublish(ctx context.Context, ad *models.Ad) error {
	return a.transition(ctx, ad, models.AdStatusUnpublished)
}

// Reject declines a submission. Rejected ads can be reviewed and published
// again later.
func (a *AdsClient) Reject(ctx context.Context, ad *models.Ad) error {
	return a.transition(ctx, ad, models.AdStatusRejected)
}

func (a *AdsClient) transition(ctx context.Context, ad *models.Ad, status models.AdStatus) error {
	ad.Status = status
	updated, err := a.Update(ctx, ad.ID, AdPatch{Status: &status})
	if err != nil {
		return err
	}
	*ad = *updated
	return nil
}
