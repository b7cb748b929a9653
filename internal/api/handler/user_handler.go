package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogwalk/dogwalk-api/internal/api/metrics"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

// UserHandler handles HTTP requests for accounts.
type UserHandler struct {
	service ports.AccountService
	baseURL string
}

func NewUserHandler(service ports.AccountService, baseURL string) *UserHandler {
	return &UserHandler{service: service, baseURL: baseURL}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.service.Register(c.Request().Context(), ports.RegisterAccountInput{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		Password:     req.Password,
		Birthdate:    req.Birthdate,
		Picture:      req.Picture,
		IsAdmin:      req.IsAdmin,
		Localisation: req.Localisation.toDomain(),
	})
	if err != nil {
		return err
	}

	metrics.AccountsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, account)
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, account, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: fmt.Sprintf("Welcome %s!", account.Firstname),
		Token:   token,
	})
}

// List returns a page of accounts sorted by firstname.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page      query     int  false  "1-based page index"
// @Param        pageSize  query     int  false  "page size (max 100)"
// @Success      200       {object}  userListResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page := pageFromRequest(c)

	accounts, total, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	setLinkHeader(c, h.baseURL, "/users", page, total)
	return c.JSON(http.StatusOK, userListResponse{Data: accounts, Total: total})
}

// Get returns a single account by ID.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	account, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Update partially updates an account. Only the account itself may do so.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.Account
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.UpdateAccountInput{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		Password:     req.Password,
		Birthdate:    req.Birthdate,
		Picture:      req.Picture,
		Localisation: req.Localisation.toDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Replace fully replaces an account. Missing required fields yield a 501.
//
// @Summary      Replace a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Account ID"
// @Param        body  body      registerUserRequest  true  "Full replacement"
// @Success      200   {object}  domain.Account
// @Failure      501   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Replace(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotImplemented, err.Error())
	}

	account, err := h.service.Replace(c.Request().Context(), actorID, c.Param("id"), ports.RegisterAccountInput{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		Password:     req.Password,
		Birthdate:    req.Birthdate,
		Picture:      req.Picture,
		IsAdmin:      req.IsAdmin,
		Localisation: req.Localisation.toDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "Account ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Join puts the account on a walk and notifies subscribers.
//
// @Summary      Join a walk
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Account ID"
// @Param        walkId  path      string  true  "Walk ID"
// @Success      200     {object}  domain.Account
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{id}/join/{walkId} [patch]
func (h *UserHandler) Join(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.service.JoinWalk(c.Request().Context(), actorID, c.Param("id"), c.Param("walkId"))
	if err != nil {
		return err
	}

	metrics.WalkJoinsTotal.Inc()
	return c.JSON(http.StatusOK, account)
}

// Leave clears the account's current walk.
//
// @Summary      Leave the current walk
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Account ID"
// @Success      200  {object}  domain.Account
// @Failure      403  {object}  errorResponse
// @Router       /users/{id}/leave [patch]
func (h *UserHandler) Leave(c echo.Context) error {
	actorID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.service.LeaveWalk(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}
