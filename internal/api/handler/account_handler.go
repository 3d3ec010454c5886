package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
	activity ports.ActivityService
}

func NewAccountHandler(accounts ports.AccountService, activity ports.ActivityService) *AccountHandler {
	return &AccountHandler{accounts: accounts, activity: activity}
}

// Me returns the account behind the presented token.
//
// @Summary      Current account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Resolve(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UserByID returns another account's public record.
//
// @Summary      Account by id
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *AccountHandler) UserByID(c echo.Context) error {
	if _, err := ctxSubject(c); err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.accounts.ResolveID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateMe soft-deletes the caller's account. The record survives and its
// name and email stay reserved; only authentication is disabled.
//
// @Summary      Deactivate current account
// @Tags         account
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /me [delete]
func (h *AccountHandler) DeactivateMe(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	if err := h.accounts.Deactivate(c.Request().Context(), subject); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type activityResponse struct {
	Events []domain.ActivityEvent `json:"events"`
}

// Activity lists the caller's recent account activity, newest first.
//
// @Summary      Recent account activity
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return"
// @Success      200    {object}  activityResponse
// @Failure      401    {object}  map[string]string
// @Router       /me/activity [get]
func (h *AccountHandler) Activity(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	events, err := h.activity.Recent(c.Request().Context(), subject, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityResponse{Events: events})
}
