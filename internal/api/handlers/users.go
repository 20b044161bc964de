package handlers

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	mw "github.com/okonkwoe/c2c-market/internal/api/middleware"
	"github.com/okonkwoe/c2c-market/internal/auth"
	"github.com/okonkwoe/c2c-market/internal/metrics"
	"github.com/okonkwoe/c2c-market/internal/store"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// UserHandler handles registration, token issuance, and the current-user
// endpoint.
type UserHandler struct {
	store store.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// Register wires the user routes onto the router.
func (h *UserHandler) Register(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/api/user")
	g.POST("/", h.Create)
	g.POST("/token/", h.Token)
	g.GET("/me/", h.Me, requireAuth)
	g.PUT("/me/", h.UpdateMe, requireAuth)
	g.PATCH("/me/", h.UpdateMe, requireAuth)
}

type registerRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	StateOfResidence string `json:"state_of_residence"`
}

func (r *registerRequest) validate() map[string]string {
	errs := map[string]string{}
	if r.Email == "" {
		errs["email"] = "this field is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "enter a valid email address"
	}
	if r.Password == "" {
		errs["password"] = "this field is required"
	} else if len(r.Password) < auth.MinPasswordLength {
		errs["password"] = "password must be at least 5 characters"
	}
	if r.FirstName == "" {
		errs["first_name"] = "this field is required"
	}
	if r.LastName == "" {
		errs["last_name"] = "this field is required"
	}
	if r.StateOfResidence == "" {
		errs["state_of_residence"] = "this field is required"
	} else if !domain.ValidState(r.StateOfResidence) {
		errs["state_of_residence"] = "unknown state code"
	}
	return errs
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Create handles POST /api/user/. It creates the account and its profile
// together. The password never appears in a response.
func (h *UserHandler) Create(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "hashing password: " + err.Error(),
		})
	}

	ctx := c.Request().Context()

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := h.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Errors: map[string]string{"email": "email already registered"},
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "creating user: " + err.Error(),
		})
	}

	profile := domain.Profile{
		UserID:           user.ID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		StateOfResidence: req.StateOfResidence,
	}

	if err := h.store.CreateProfile(ctx, &profile); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "creating profile: " + err.Error(),
		})
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token handles POST /api/user/token/. A user keeps the same key across
// logins until the token row is removed.
func (h *UserHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	errs := map[string]string{}
	if req.Email == "" {
		errs["email"] = "this field is required"
	}
	if req.Password == "" {
		errs["password"] = "this field is required"
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	ctx := c.Request().Context()

	user, err := h.store.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return badCredentials(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "fetching user: " + err.Error(),
		})
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return badCredentials(c)
	}

	key, err := auth.NewTokenKey()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "generating token: " + err.Error(),
		})
	}

	key, err = h.store.GetOrCreateToken(ctx, user.ID, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "issuing token: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: key})
}

// Me handles GET /api/user/me/.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.store.GetUserByID(c.Request().Context(), mw.CallerFrom(c).UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "fetching user: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r *updateUserRequest) validate() map[string]string {
	errs := map[string]string{}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			errs["email"] = "enter a valid email address"
		}
	}
	if r.Password != nil && len(*r.Password) < auth.MinPasswordLength {
		errs["password"] = "password must be at least 5 characters"
	}
	return errs
}

// UpdateMe handles PUT and PATCH /api/user/me/. Email and password may
// change; a new password is re-hashed before storage.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	ctx := c.Request().Context()

	user, err := h.store.GetUserByID(ctx, mw.CallerFrom(c).UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "fetching user: " + err.Error(),
		})
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "hashing password: " + err.Error(),
			})
		}
		user.PasswordHash = hash
	}

	if err := h.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Errors: map[string]string{"email": "email already registered"},
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "updating user: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, user)
}

func badCredentials(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Errors: map[string]string{
			"non_field_errors": "unable to log in with provided credentials",
		},
	})
}
