package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

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

// MemberController serves the public directory (browse, profile, register)
// and the admin member moderation table.
type MemberController struct {
	api    *client.Client
	creds  client.CredentialProvider
	msgs   *i18n.Catalog
	locale string
	log    *logger.Logger

	Table *TableController[models.Member]
}

func NewMemberController(api *client.Client, creds client.CredentialProvider, msgs *i18n.Catalog, locale string) *MemberController {
	mc := &MemberController{
		api:    api,
		creds:  creds,
		msgs:   msgs,
		locale: locale,
		log:    logger.New("members"),
	}
	mc.Table = NewTableController(
		"members",
		search.AdminPageSize,
		api.Members.List,
		func(items []models.Member, _ Viewer) moderation.Buckets[models.Member] {
			return moderation.MemberBuckets(items)
		},
		search.MemberFields,
		mc.runAction,
	)
	return mc
}

func (mc *MemberController) newSession() *session.MemberSession {
	return session.NewMemberSession(mc.api.Members, mc.creds, mc.msgs, mc.locale)
}

func (mc *MemberController) runAction(ctx context.Context, name, id string) error {
	sess := mc.newSession()
	if err := sess.Load(ctx, id); err != nil {
		return err
	}
	switch name {
	case "approve":
		return sess.Approve(ctx)
	case "suspend":
		return sess.Suspend(ctx)
	case "reject":
		return sess.Reject(ctx)
	case "delete":
		return sess.Delete(ctx)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown member action %q", name))
	}
}

// Browse handles the public GET /members: approved profiles only, facet
// filters from the query string, twelve cards a page.
func (mc *MemberController) Browse(c echo.Context) error {
	members, err := mc.api.Members.List(c.Request().Context())
	if err != nil {
		return err
	}

	approved := moderation.MemberBuckets(members).Bucket(string(models.MemberStatusApproved))
	filters := facetsFrom(c)
	matched := search.FilterMembers(approved, filters)
	matched = search.Filter(matched, c.QueryParam("q"), search.MemberFields)

	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"rows":        search.PageSlice(matched, page, search.MemberGridPageSize),
		"total":       len(matched),
		"page":        page,
		"total_pages": search.TotalPages(len(matched), search.MemberGridPageSize),
	})
}

func facetsFrom(c echo.Context) search.MemberFilters {
	filters := search.MemberFilters{
		Role:       models.MemberRole(c.QueryParam("role")),
		Location:   c.QueryParam("location"),
		Skills:     splitTags(c.QueryParam("skills")),
		Interests:  splitTags(c.QueryParam("interests")),
		Industries: splitTags(c.QueryParam("industries")),
		HiringOnly: c.QueryParam("hiring") == "1",
	}
	if min, err := strconv.Atoi(c.QueryParam("min_experience")); err == nil && min > 0 {
		filters.MinExperience = min
	}
	return filters
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// Profile handles the public GET /members/:id. Profiles that are not
// approved do not exist as far as visitors are concerned.
func (mc *MemberController) Profile(c echo.Context) error {
	member, err := mc.api.Members.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "member not found")
		}
		return err
	}
	if member.Status != models.MemberStatusApproved {
		return echo.NewHTTPError(http.StatusNotFound, "member not found")
	}
	return c.JSON(http.StatusOK, member)
}

// Detail handles GET /admin/members/:id, which sees every status.
func (mc *MemberController) Detail(c echo.Context) error {
	sess := mc.newSession()
	if err := sess.Load(c.Request().Context(), c.Param("id")); err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "member not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, sess.Member())
}

// Register handles the public POST /register wizard submission. Backend
// field errors come back as a 422 with a per-field message map so the form
// can mark what to fix.
func (mc *MemberController) Register(c echo.Context) error {
	var req validator.RegisterRequest
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

	sess := mc.newSession()
	member := sess.Member()
	member.Name = req.Name
	member.Email = req.Email
	member.Role = models.MemberRole(req.Role)
	member.City = req.City
	member.Country = req.Country
	member.Bio = bioFrom(req)

	if err := sess.Register(c.Request().Context(), req.Password, image); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"message": mc.msgs.T(mc.locale, "errors.validation"),
				"errors":  apiErr.Fields,
			})
		}
		return err
	}
	mc.log.Success("member registered: %s (%s)", member.Email, member.Role)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": mc.msgs.T(mc.locale, "banners.submitted"),
		"member":  sess.Member(),
	})
}

// bioFrom builds the role-matched profile payload; fields belonging to the
// other roles are discarded.
func bioFrom(req validator.RegisterRequest) *models.Bio {
	switch models.MemberRole(req.Role) {
	case models.MemberRoleProfessional:
		return &models.Bio{
			Kind: models.BioProfessional,
			Professional: &models.ProfessionalInfo{
				Title:           req.Title,
				YearsExperience: req.YearsExperience,
				Skills:          splitTags(req.Skills),
				Summary:         req.Summary,
			},
		}
	case models.MemberRoleStudent:
		return &models.Bio{
			Kind: models.BioStudent,
			Academic: &models.AcademicInfo{
				Institution:    req.Institution,
				Degree:         req.Degree,
				FieldOfStudy:   req.FieldOfStudy,
				GraduationYear: req.GraduationYear,
				Interests:      splitTags(req.Interests),
			},
		}
	case models.MemberRoleCompany:
		return &models.Bio{
			Kind: models.BioCompany,
			Company: &models.CompanyInfo{
				LegalName:  req.LegalName,
				Industries: splitTags(req.Industries),
				Size:       req.Size,
				Website:    req.Website,
				Hiring:     req.Hiring,
			},
		}
	default:
		return nil
	}
}

// Save handles POST /admin/members/:id, a profile edit from the dashboard.
func (mc *MemberController) Save(c echo.Context) error {
	var req struct {
		Name    string `json:"name" form:"name" validate:"required,min=2"`
		City    string `json:"city" form:"city"`
		Country string `json:"country" form:"country"`
	}
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
	sess := mc.newSession()
	if err := sess.Load(ctx, c.Param("id")); err != nil {
		if client.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "member not found")
		}
		return err
	}
	patch := client.MemberPatch{Name: &req.Name, City: &req.City, Country: &req.Country}
	if err := sess.Save(ctx, patch, image); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": mc.msgs.T(mc.locale, "banners.saved"),
		"member":  sess.Member(),
	})
}
