package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

// DogHandler handles HTTP requests for dogs.
type DogHandler struct {
	service ports.DogService
	baseURL string
}

func NewDogHandler(service ports.DogService, baseURL string) *DogHandler {
	return &DogHandler{service: service, baseURL: baseURL}
}

// Create registers a new dog.
//
// @Summary      Create a dog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDogRequest  true  "Dog details"
// @Success      201   {object}  domain.Dog
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dogs [post]
func (h *DogHandler) Create(c echo.Context) error {
	if _, err := ctxAccountID(c); err != nil {
		return err
	}

	var req createDogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	dog, err := h.service.Create(c.Request().Context(), ports.CreateDogInput{
		Name:      req.Name,
		Birthdate: req.Birthdate,
		Breed:     req.Breed,
		Masters:   req.Masters,
		Dislikes:  req.Dislikes,
		Picture:   req.Picture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dog)
}

// List returns a page of dogs sorted by name.
//
// @Summary      List dogs
// @Tags         dogs
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "1-based page index"
// @Param        pageSize  query     int  false  "page size (max 100)"
// @Success      200       {object}  dogListResponse
// @Router       /dogs [get]
func (h *DogHandler) List(c echo.Context) error {
	page := pageFromRequest(c)

	dogs, total, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	setLinkHeader(c, h.baseURL, "/dogs", page, total)
	return c.JSON(http.StatusOK, dogListResponse{Data: dogs, Total: total})
}

// Get returns a single dog by ID.
//
// @Summary      Get a dog
// @Tags         dogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Dog ID"
// @Success      200  {object}  domain.Dog
// @Failure      404  {object}  errorResponse
// @Router       /dogs/{id} [get]
func (h *DogHandler) Get(c echo.Context) error {
	dog, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Update partially updates a dog. Only a master may do so.
//
// @Summary      Update a dog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Dog ID"
// @Param        body  body      updateDogRequest  true  "Fields to update"
// @Success      200   {object}  domain.Dog
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Router       /dogs/{id} [patch]
func (h *DogHandler) Update(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateDogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	dog, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.UpdateDogInput{
		Name:      req.Name,
		Birthdate: req.Birthdate,
		Breed:     req.Breed,
		Masters:   req.Masters,
		Dislikes:  req.Dislikes,
		Picture:   req.Picture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Replace fully replaces a dog. Missing required fields yield a 501.
//
// @Summary      Replace a dog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Dog ID"
// @Param        body  body      createDogRequest  true  "Full replacement"
// @Success      200   {object}  domain.Dog
// @Failure      501   {object}  errorResponse
// @Router       /dogs/{id} [put]
func (h *DogHandler) Replace(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req createDogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotImplemented, err.Error())
	}

	dog, err := h.service.Replace(c.Request().Context(), actorID, c.Param("id"), ports.CreateDogInput{
		Name:      req.Name,
		Birthdate: req.Birthdate,
		Breed:     req.Breed,
		Masters:   req.Masters,
		Dislikes:  req.Dislikes,
		Picture:   req.Picture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Delete removes a dog. Only a master may do so.
//
// @Summary      Delete a dog
// @Tags         dogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Dog ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /dogs/{id} [delete]
func (h *DogHandler) Delete(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
