package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogwalk/dogwalk-api/internal/api/metrics"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

// WalkHandler handles HTTP requests for walks.
type WalkHandler struct {
	service ports.WalkService
	baseURL string
}

func NewWalkHandler(service ports.WalkService, baseURL string) *WalkHandler {
	return &WalkHandler{service: service, baseURL: baseURL}
}

// Create starts a new walk owned by the authenticated account.
//
// @Summary      Create a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWalkRequest  true  "Walk details"
// @Success      201   {object}  domain.Walk
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /walks [post]
func (h *WalkHandler) Create(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req createWalkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	walk, err := h.service.Create(c.Request().Context(), actorID, ports.CreateWalkInput{
		Title: req.Title,
		Path:  req.pathToDomain(),
	})
	if err != nil {
		return err
	}

	metrics.WalksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, walk)
}

// List returns a page of walks sorted by title.
//
// @Summary      List walks
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "1-based page index"
// @Param        pageSize  query     int  false  "page size (max 100)"
// @Success      200       {object}  walkListResponse
// @Router       /walks [get]
func (h *WalkHandler) List(c echo.Context) error {
	page := pageFromRequest(c)

	walks, total, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	setLinkHeader(c, h.baseURL, "/walks", page, total)
	return c.JSON(http.StatusOK, walkListResponse{Data: walks, Total: total})
}

// Get returns a single walk by ID.
//
// @Summary      Get a walk
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Walk ID"
// @Success      200  {object}  domain.Walk
// @Failure      404  {object}  errorResponse
// @Router       /walks/{id} [get]
func (h *WalkHandler) Get(c echo.Context) error {
	walk, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, walk)
}

// Update partially updates a walk. Only the creator may do so.
//
// @Summary      Update a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Walk ID"
// @Param        body  body      updateWalkRequest  true  "Fields to update"
// @Success      200   {object}  domain.Walk
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Router       /walks/{id} [patch]
func (h *WalkHandler) Update(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateWalkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	walk, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.UpdateWalkInput{
		Title: req.Title,
		Path:  req.pathToDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, walk)
}

// Replace fully replaces a walk. Missing required fields yield a 501.
//
// @Summary      Replace a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Walk ID"
// @Param        body  body      createWalkRequest  true  "Full replacement"
// @Success      200   {object}  domain.Walk
// @Failure      501   {object}  errorResponse
// @Router       /walks/{id} [put]
func (h *WalkHandler) Replace(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req createWalkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotImplemented, err.Error())
	}

	walk, err := h.service.Replace(c.Request().Context(), actorID, c.Param("id"), ports.CreateWalkInput{
		Title: req.Title,
		Path:  req.pathToDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, walk)
}

// Delete removes a walk. Only the creator may do so.
//
// @Summary      Delete a walk
// @Tags         walks
// @Security     BearerAuth
// @Param        id  path  string  true  "Walk ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /walks/{id} [delete]
func (h *WalkHandler) Delete(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
