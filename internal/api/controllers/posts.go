package controllers

import (
	"context"
	"fmt"
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

// PostController serves the member posts table. Non-admin members only ever
// see their own posts; admins moderate everyone's.
type PostController struct {
	api    *client.Client
	creds  client.CredentialProvider
	msgs   *i18n.Catalog
	locale string
	log    *logger.Logger

	Table *TableController[models.Post]
}

func NewPostController(api *client.Client, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *PostController {
	pc := &PostController{
		api:    api,
		creds:  creds,
		msgs:   msgs,
		locale: locale,
		log:    logger.New("posts"),
	}
	pc.Table = NewTableController(
		"posts",
		search.AdminPageSize,
		api.Posts.List,
		func(items []models.Post, viewer Viewer) moderation.Buckets[models.Post] {
			return moderation.PostBuckets(items, viewer.MemberID, viewer.Admin)
		},
		search.PostFields,
		pc.runAction,
	)
	return pc
}

func (pc *PostController) newSession() *session.PostSession {
	return session.NewPostSession(pc.api.Posts, pc.creds, pc.msgs, pc.locale)
}

func (pc *PostController) runAction(ctx context.Context, name, id string) error {
	sess := pc.newSession()
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
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown post action %q", name))
	}
}

// Detail handles GET /admin/posts/:id.
func (pc *PostController) Detail(c echo.Context) error {
	sess := pc.newSession()
	if err := sess.Load(c.Request().Context(), c.Param("id")); err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, sess.Post())
}

// Save handles POST /admin/posts and POST /admin/posts/:id. Without an id a
// new draft is created for the signed-in member; with one, that post is
// edited in place.
func (pc *PostController) Save(c echo.Context) error {
	var req validator.PostSaveRequest
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

	ctx := c.Request().Context()
	sess := pc.newSession()
	status := http.StatusCreated
	if id := c.Param("id"); id != "" {
		if err := sess.Load(ctx, id); err != nil {
			if client.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusNotFound, "post not found")
			}
			return err
		}
		status = http.StatusOK
	}
	patch := client.PostPatch{Title: &req.Title, Content: &req.Content}
	if err := sess.Save(ctx, patch, image); err != nil {
		return err
	}
	pc.log.Info("post saved: %s", sess.Post().Title)
	return c.JSON(status, map[string]interface{}{
		"message": pc.msgs.T(pc.locale, "banners.saved"),
		"post":    sess.Post(),
	})
}
