package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"ruyatech/internal/api/validator"
	"ruyatech/internal/client"
	"ruyatech/internal/i18n"
	"ruyatech/internal/models"
	"ruyatech/internal/moderation"
	"ruyatech/internal/search"
	"ruyatech/internal/session"
	"ruyatech/internal/utils/logger"
)

// AdController serves the public ad submission form and the admin ad table.
type AdController struct {
	api    *client.Client
	creds  client.CredentialProvider
	msgs   *i18n.Catalog
	locale string
	log    *logger.Logger

	Table *TableController[models.Ad]
}

func NewAdController(api *client.Client, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *AdController {
	ac := &AdController{
		api:    api,
		creds:  creds,
		msgs:   msgs,
		locale: locale,
		log:    logger.New("ads"),
	}
	ac.Table = NewTableController(
		"ads",
		search.AdminPageSize,
		api.Ads.List,
		func(items []models.Ad, _ Viewer) moderation.Buckets[models.Ad] {
			return moderation.AdBuckets(items)
		},
		search.AdFields,
		ac.runAction,
	)
	return ac
}

func (ac *AdController) newSession() *session.AdSession {
	return session.NewAdSession(ac.api.Ads, ac.creds, ac.msgs, ac.locale)
}

func (ac *AdController) runAction(ctx context.Context, name, id string) error {
	sess := ac.newSession()
	if err := sess.Load(ctx, id); err != nil {
		return err
	}
	switch name {
	case "publish":
		return sess.Publish(ctx)
	case "unpublish":
		return sess.Unpublish(ctx)
	case "reject":
		return sess.Reject(ctx)
	case "delete":
		return sess.Delete(ctx)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown ad action %q", name))
	}
}

// Detail handles GET /admin/ads/:id.
func (ac *AdController) Detail(c echo.Context) error {
	sess := ac.newSession()
	if err := sess.Load(c.Request().Context(), c.Param("id")); err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "ad not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, sess.Ad())
}

// Submit handles the public POST /ads: anyone may hand in an ad, which lands
// in the pending bucket until a moderator decides.
func (ac *AdController) Submit(c echo.Context) error {
	var req validator.AdSubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := formAttachment(c, "image")
	if err != nil {
		return err
	}

	sess := ac.newSession()
	patch := client.AdPatch{Title: &req.Title}
	if req.URL != "" {
		patch.URL = &req.URL
	}
	if req.Location != "" {
		patch.Location = &req.Location
	}
	if err := sess.Save(c.Request().Context(), patch, image); err != nil {
		return err
	}
	ac.log.Info("ad submitted: %s", sess.Ad().Title)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": ac.msgs.T(ac.locale, "banners.submitted"),
		"ad":      sess.Ad(),
	})
}

// Save handles POST /admin/ads/:id, an edit to an existing ad.
func (ac *AdController) Save(c echo.Context) error {
	var req validator.AdSubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess := ac.newSession()
	if err := sess.Load(c.Request().Context(), c.Param("id")); err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "ad not found")
		}
		return err
	}
	patch := client.AdPatch{Title: &req.Title, URL: &req.URL, Location: &req.Location}
	if err := sess.Save(c.Request().Context(), patch, nil); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": ac.msgs.T(ac.locale, "banners.saved"),
		"ad":      sess.Ad(),
	})
}

// formAttachment reads an optional multipart file field into an upload. A
// missing field is not an error; the entity simply keeps its image.
func formAttachment(c echo.Context, field string) (*client.Attachment, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Missing file part, or a non-multipart body with no files at all.
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload "+field)
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload "+field)
	}
	return &client.Attachment{Field: field, Name: fh.Filename, Content: content}, nil
}
