package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	mw "github.com/okonkwoe/c2c-market/internal/api/middleware"
	"github.com/okonkwoe/c2c-market/internal/metrics"
	"github.com/okonkwoe/c2c-market/internal/store"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// ItemHandler handles listing CRUD, interest, and sale operations.
type ItemHandler struct {
	store store.Store
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(s store.Store) *ItemHandler {
	return &ItemHandler{store: s}
}

// Register wires the item routes onto the router. requireAuth guards the
// routes that demand an authenticated caller.
func (h *ItemHandler) Register(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/api/items")
	g.GET("/", h.List)
	g.POST("/", h.Create, requireAuth)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update, requireAuth)
	g.PATCH("/:id", h.Update, requireAuth)
	g.DELETE("/:id", h.Delete, requireAuth)
	g.POST("/interest", h.Interest)
	g.POST("/mark-sold", h.MarkSold, requireAuth)
}

type createItemRequest struct {
	Name        string `json:"name"`
	Price       *int64 `json:"price"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (r *createItemRequest) validate() map[string]string {
	errs := map[string]string{}
	if r.Name == "" {
		errs["name"] = "this field is required"
	}
	if r.Price == nil {
		errs["price"] = "this field is required"
	} else if *r.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	if r.Description == "" {
		errs["description"] = "this field is required"
	}
	if r.URL == "" {
		errs["url"] = "this field is required"
	}
	return errs
}

// List handles GET /api/items/. Authenticated callers get their own items,
// sold and unsold, oldest first. Anonymous callers get everyone's unsold
// items, newest first.
func (h *ItemHandler) List(c echo.Context) error {
	caller := mw.CallerFrom(c)

	var (
		items []domain.Item
		err   error
	)
	if caller.Authenticated() {
		items, err = h.store.ListItemsByOwner(c.Request().Context(), caller.UserID)
	} else {
		items, err = h.store.ListUnsoldItems(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "listing items: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.Item{}
	}

	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/items/.
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	item := domain.Item{
		ID:          uuid.NewString(),
		UserID:      mw.CallerFrom(c).UserID,
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		URL:         req.URL,
	}

	if err := h.store.CreateItem(c.Request().Context(), &item); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "creating item: " + err.Error(),
		})
	}

	metrics.ItemsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, item)
}

// Get handles GET /api/items/:id. Items invisible to the caller report
// not-found, the same as absent items.
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.store.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return itemFetchError(c, err)
	}

	if !item.VisibleTo(mw.CallerFrom(c)) {
		return itemNotFound(c)
	}

	return c.JSON(http.StatusOK, item)
}

type updateItemRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	IsSold      *bool   `json:"is_sold"`
}

func (r *updateItemRequest) validate(current *domain.Item) map[string]string {
	errs := map[string]string{}
	if r.Name != nil && *r.Name == "" {
		errs["name"] = "name must not be empty"
	}
	if r.Price != nil && *r.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	if r.IsSold != nil && !*r.IsSold && current.IsSold {
		errs["is_sold"] = "a sold item cannot be marked unsold"
	}
	return errs
}

// Update handles PUT and PATCH /api/items/:id. Fields absent from the body
// are left unchanged. Only the owner may update; anyone else gets the same
// not-found as a missing item.
func (h *ItemHandler) Update(c echo.Context) error {
	item, err := h.store.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return itemFetchError(c, err)
	}

	if !item.OwnedBy(mw.CallerFrom(c)) {
		return itemNotFound(c)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(item); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.URL != nil {
		item.URL = *req.URL
	}
	if req.IsSold != nil && *req.IsSold {
		item.IsSold = true
	}

	if err := h.store.UpdateItem(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "updating item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/items/:id. Interest associations go with the
// item; buyer records stay.
func (h *ItemHandler) Delete(c echo.Context) error {
	item, err := h.store.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return itemFetchError(c, err)
	}

	if !item.OwnedBy(mw.CallerFrom(c)) {
		return itemNotFound(c)
	}

	if err := h.store.DeleteItem(c.Request().Context(), item.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "deleting item: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

type interestRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

func (r *interestRequest) validate() map[string]string {
	errs := map[string]string{}
	if r.ID == "" {
		errs["id"] = "this field is required"
	}
	if r.Name == "" {
		errs["name"] = "this field is required"
	}
	if r.Email == "" {
		errs["email"] = "this field is required"
	}
	if r.Location == "" {
		errs["location"] = "this field is required"
	}
	return errs
}

// Interest handles POST /api/items/interest. Anyone may express interest,
// including on sold items, and every call records a fresh buyer.
func (h *ItemHandler) Interest(c echo.Context) error {
	var req interestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if errs := req.validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	ctx := c.Request().Context()

	item, err := h.store.GetItem(ctx, req.ID)
	if err != nil {
		return itemFetchError(c, err)
	}

	buyer := domain.Buyer{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	}

	if err := h.store.AddBuyer(ctx, item.ID, &buyer); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "recording interest: " + err.Error(),
		})
	}

	metrics.InterestExpressedTotal.Inc()

	item.Buyers = append(item.Buyers, buyer)

	return c.JSON(http.StatusCreated, item)
}

type markSoldRequest struct {
	ID string `json:"id"`
}

// MarkSold handles POST /api/items/mark-sold. Any authenticated caller may
// mark any item sold; the operation is idempotent.
func (h *ItemHandler) MarkSold(c echo.Context) error {
	var req markSoldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Errors: map[string]string{"id": "this field is required"},
		})
	}

	item, err := h.store.MarkItemSold(c.Request().Context(), req.ID)
	if err != nil {
		return itemFetchError(c, err)
	}

	metrics.ItemsSoldTotal.Inc()

	return c.JSON(http.StatusOK, item)
}

func itemNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "item not found",
	})
}

func itemFetchError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return itemNotFound(c)
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "fetching item: " + err.Error(),
	})
}
