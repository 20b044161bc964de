package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/okonkwoe/c2c-market/internal/api/middleware"
	"github.com/okonkwoe/c2c-market/internal/store"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// ProfileHandler handles the caller's profile endpoint.
type ProfileHandler struct {
	store store.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(s store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// Register wires the profile routes onto the router. All of them require
// an authenticated caller.
func (h *ProfileHandler) Register(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/api/profile", requireAuth)
	g.GET("/me/", h.Me)
	g.PUT("/me/", h.UpdateMe)
	g.PATCH("/me/", h.UpdateMe)
}

// Me handles GET /api/profile/me/.
func (h *ProfileHandler) Me(c echo.Context) error {
	p, err := h.store.GetProfile(c.Request().Context(), mw.CallerFrom(c).UserID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "fetching profile: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, p)
}

type updateProfileRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	StateOfResidence *string `json:"state_of_residence"`
}

func (r *updateProfileRequest) validate() map[string]string {
	errs := map[string]string{}
	if r.FirstName != nil && *r.FirstName == "" {
		errs["first_name"] = "first_name must not be empty"
	}
	if r.LastName != nil && *r.LastName == "" {
		errs["last_name"] = "last_name must not be empty"
	}
	if r.StateOfResidence != nil && !domain.ValidState(*r.StateOfResidence) {
		errs["state_of_residence"] = "unknown state code"
	}
	return errs
}

// UpdateMe handles PUT and PATCH /api/profile/me/. Fields absent from the
// body are left unchanged. The joined email is read-only here; changing it
// goes through the user endpoint.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	ctx := c.Request().Context()

	p, err := h.store.GetProfile(ctx, mw.CallerFrom(c).UserID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "fetching profile: " + err.Error(),
		})
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.StateOfResidence != nil {
		p.StateOfResidence = *req.StateOfResidence
	}

	if err := h.store.UpdateProfile(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "updating profile: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}
