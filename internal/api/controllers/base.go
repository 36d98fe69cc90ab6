package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ruyatech/internal/api/middleware"
	"ruyatech/internal/api/validator"
	"ruyatech/internal/moderation"
	"ruyatech/internal/search"
)

// Viewer is who is looking at a moderation table; post tables scope their
// contents to the viewer's own rows unless the viewer is an admin.
type Viewer struct {
	MemberID string
	Admin    bool
}

// TableResponse is the dashboard table payload: tab badges plus one page of
// rows.
type TableResponse[T any] struct {
	Tabs       map[string]int `json:"tabs"`
	Rows       []T            `json:"rows"`
	Tab        string         `json:"tab"`
	Term       string         `json:"term,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// TableController renders one admin moderation table: full fetch, bucket
// partition, text filter, page slice. Every row action is followed by a
// fresh fetch and re-aggregation; nothing is patched locally.
type TableController[T any] struct {
	entity   string
	pageSize int
	fetch    func(ctx context.Context) ([]T, error)
	buckets  func(items []T, viewer Viewer) moderation.Buckets[T]
	fields   func(T) []string
	action   func(ctx context.Context, name, id string) error
}

// NewTableController wires one entity's moderation table.
func NewTableController[T any](
	entity string,
	pageSize int,
	fetch func(ctx context.Context) ([]T, error),
	buckets func(items []T, viewer Viewer) moderation.Buckets[T],
	fields func(T) []string,
	action func(ctx context.Context, name, id string) error,
) *TableController[T] {
	return &TableController[T]{
		entity:   entity,
		pageSize: pageSize,
		fetch:    fetch,
		buckets:  buckets,
		fields:   fields,
		action:   action,
	}
}

func viewerFrom(c echo.Context) Viewer {
	return Viewer{
		MemberID: middleware.GetMemberID(c),
		Admin:    middleware.IsAdmin(c),
	}
}

// Table handles GET: the full collection is fetched, partitioned, filtered,
// and sliced according to tab/q/page query params.
func (tc *TableController[T]) Table(c echo.Context) error {
	response, err := tc.buildTable(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

func (tc *TableController[T]) buildTable(c echo.Context) (*TableResponse[T], error) {
	state := search.NewTableState()
	state.SetBucket(c.QueryParam("tab"))
	state.SetTerm(c.QueryParam("q"))
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		state.SetPage(page)
	}

	items, err := tc.fetch(c.Request().Context())
	if err != nil {
		return nil, err
	}

	buckets := tc.buckets(items, viewerFrom(c))
	rows := search.Filter(buckets.Bucket(state.Bucket), state.Term, tc.fields)

	return &TableResponse[T]{
		Tabs:       buckets.Counts(),
		Rows:       search.PageSlice(rows, state.Page, tc.pageSize),
		Tab:        state.Bucket,
		Term:       state.Term,
		Page:       state.Page,
		TotalPages: search.TotalPages(len(rows), tc.pageSize),
	}, nil
}

// Action handles POST /:id/:action. On success the refreshed table is the
// response, so the dashboard re-renders from server truth.
func (tc *TableController[T]) Action(c echo.Context) error {
	name := c.Param("action")
	id := c.Param("id")
	if id == "" || name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing id or action")
	}

	if err := tc.action(c.Request().Context(), name, id); err != nil {
		return err
	}

	response, err := tc.buildTable(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

// Bulk handles POST /bulk: the selection is processed sequentially and the
// loop stops at the first failure. The response always says how far it got.
func (tc *TableController[T]) Bulk(c echo.Context) error {
	var req validator.BulkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	result, err := moderation.Run(ctx, req.IDs, func(ctx context.Context, id string) error {
		return tc.action(ctx, req.Action, id)
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"entity":    tc.entity,
			"completed": result.Completed,
			"failed_id": result.FailedID,
			"error":     err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"completed": result.Completed,
	})
}

// RegisterRoutes registers the table, row action, and bulk routes.
func (tc *TableController[T]) RegisterRoutes(g *echo.Group, path string) {
	g.GET(path, tc.Table)
	g.POST(path+"/bulk", tc.Bulk)
	g.POST(path+"/:id/:action", tc.Action)
}
