package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okonkwoe/c2c-market/internal/store"
	"github.com/okonkwoe/c2c-market/internal/store/mocks"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

const (
	ownerID    = "11111111-1111-1111-1111-111111111111"
	strangerID = "22222222-2222-2222-2222-222222222222"
	itemID     = "33333333-3333-3333-3333-333333333333"
)

func TestItemHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "authenticated caller sees own items",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListItemsByOwner(mock.Anything, ownerID).
					Return([]domain.Item{
						{ID: itemID, UserID: ownerID, Name: "Leather Sofa", IsSold: true},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Leather Sofa"`,
		},
		{
			name:   "anonymous caller sees unsold items",
			caller: domain.Anonymous(),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListUnsoldItems(mock.Anything).
					Return([]domain.Item{
						{ID: itemID, UserID: ownerID, Name: "Generator"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Generator"`,
		},
		{
			name:   "nil result is an empty array",
			caller: domain.Anonymous(),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListUnsoldItems(mock.Anything).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "store error",
			caller: domain.Anonymous(),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListUnsoldItems(mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing items`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodGet, "/api/items/", "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestItemHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "valid item",
			caller: domain.Owner(ownerID),
			body:   `{"name":"Office Chair","price":15000,"description":"Barely used","url":"https://example.com/chair.jpg"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					CreateItem(mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
						return i.UserID == ownerID && i.Name == "Office Chair" &&
							i.Price == 15000 && i.ID != ""
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"Office Chair"`,
		},
		{
			name:       "anonymous caller rejected",
			caller:     domain.Anonymous(),
			body:       `{"name":"Office Chair","price":15000,"description":"x","url":"y"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `authentication required`,
		},
		{
			name:       "missing fields named individually",
			caller:     domain.Owner(ownerID),
			body:       `{"name":"Office Chair"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"price"`,
		},
		{
			name:       "negative price rejected",
			caller:     domain.Owner(ownerID),
			body:       `{"name":"Chair","price":-5,"description":"x","url":"y"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `price must not be negative`,
		},
		{
			name:   "store error",
			caller: domain.Owner(ownerID),
			body:   `{"name":"Chair","price":1,"description":"x","url":"y"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					CreateItem(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `creating item`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodPost, "/api/items/", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestItemHandler_Create_ValidationNamesEveryMissingField(t *testing.T) {
	t.Parallel()

	e, _ := newAPI(t, domain.Owner(ownerID))

	rec := doJSON(e, http.MethodPost, "/api/items/", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 4)
	for _, field := range []string{"name", "price", "description", "url"} {
		assert.Contains(t, resp.Errors, field)
	}
}

func TestItemHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "unsold item visible to anyone",
			caller: domain.Anonymous(),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, Name: "Fridge"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Fridge"`,
		},
		{
			name:   "sold item hidden from non-owner",
			caller: domain.Owner(strangerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true}, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
		{
			name:   "sold item visible to owner",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_sold":true`,
		},
		{
			name:   "missing item",
			caller: domain.Anonymous(),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodGet, "/api/items/"+itemID, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestItemHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		method     string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "partial update keeps other fields",
			caller: domain.Owner(ownerID),
			method: http.MethodPatch,
			body:   `{"price":9000}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{
						ID: itemID, UserID: ownerID, Name: "Desk", Price: 12000,
					}, nil).
					Once()
				m.EXPECT().
					UpdateItem(mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
						return i.Name == "Desk" && i.Price == 9000
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Desk"`,
		},
		{
			name:   "non-owner gets not found",
			caller: domain.Owner(strangerID),
			method: http.MethodPut,
			body:   `{"name":"Hijacked"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID}, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
		{
			name:   "marking sold via update sticks",
			caller: domain.Owner(ownerID),
			method: http.MethodPatch,
			body:   `{"is_sold":true}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID}, nil).
					Once()
				m.EXPECT().
					UpdateItem(mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
						return i.IsSold
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_sold":true`,
		},
		{
			name:   "reverting sold state rejected",
			caller: domain.Owner(ownerID),
			method: http.MethodPatch,
			body:   `{"is_sold":false}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true}, nil).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `a sold item cannot be marked unsold`,
		},
		{
			name:   "empty name rejected",
			caller: domain.Owner(ownerID),
			method: http.MethodPut,
			body:   `{"name":""}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, Name: "Desk"}, nil).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `name must not be empty`,
		},
		{
			name:   "missing item",
			caller: domain.Owner(ownerID),
			method: http.MethodPut,
			body:   `{"name":"x"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, tt.method, "/api/items/"+itemID, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestItemHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		setupMock  func(*mocks.MockStore)
		wantStatus int
	}{
		{
			name:   "owner deletes",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID}, nil).
					Once()
				m.EXPECT().
					DeleteItem(mock.Anything, itemID).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "non-owner gets not found",
			caller: domain.Owner(strangerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID}, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "missing item",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodDelete, "/api/items/"+itemID, "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestItemHandler_Interest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "records interest on an unsold item",
			body: `{"id":"` + itemID + `","name":"Ada","email":"ada@c2c.com","location":"Lagos"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, Name: "Fan", Buyers: []domain.Buyer{}}, nil).
					Once()
				m.EXPECT().
					AddBuyer(mock.Anything, itemID, mock.MatchedBy(func(b *domain.Buyer) bool {
						return b.Name == "Ada" && b.Email == "ada@c2c.com" &&
							b.Location == "Lagos" && b.ID != ""
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"ada@c2c.com"`,
		},
		{
			name: "sold items still accept interest",
			body: `{"id":"` + itemID + `","name":"Ada","email":"ada@c2c.com","location":"Lagos"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true, Buyers: []domain.Buyer{}}, nil).
					Once()
				m.EXPECT().
					AddBuyer(mock.Anything, itemID, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"is_sold":true`,
		},
		{
			name:       "missing fields named individually",
			body:       `{"id":"` + itemID + `"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"location"`,
		},
		{
			name: "unknown item",
			body: `{"id":"` + itemID + `","name":"Ada","email":"ada@c2c.com","location":"Lagos"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Interest requires no authentication.
			e, ms := newAPI(t, domain.Anonymous())
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodPost, "/api/items/interest", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestItemHandler_Interest_NoDeduplication(t *testing.T) {
	t.Parallel()

	e, ms := newAPI(t, domain.Anonymous())

	ms.EXPECT().
		GetItem(mock.Anything, itemID).
		Return(&domain.Item{ID: itemID, UserID: ownerID, Buyers: []domain.Buyer{}}, nil).
		Twice()
	ms.EXPECT().
		AddBuyer(mock.Anything, itemID, mock.Anything).
		Return(nil).
		Twice()

	body := `{"id":"` + itemID + `","name":"Ada","email":"ada@c2c.com","location":"Lagos"}`

	rec := doJSON(e, http.MethodPost, "/api/items/interest", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The identical payload records a second, independent buyer.
	rec = doJSON(e, http.MethodPost, "/api/items/interest", body)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestItemHandler_MarkSold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "owner marks own item sold",
			caller: domain.Owner(ownerID),
			body:   `{"id":"` + itemID + `"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					MarkItemSold(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_sold":true`,
		},
		{
			// Ownership is not checked here. Any authenticated caller can
			// mark any item sold; the behavior is load-bearing for clients
			// and must not change silently.
			name:   "non-owner can mark an item sold",
			caller: domain.Owner(strangerID),
			body:   `{"id":"` + itemID + `"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					MarkItemSold(mock.Anything, itemID).
					Return(&domain.Item{ID: itemID, UserID: ownerID, IsSold: true}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_sold":true`,
		},
		{
			name:       "anonymous rejected",
			caller:     domain.Anonymous(),
			body:       `{"id":"` + itemID + `"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `authentication required`,
		},
		{
			name:       "missing id",
			caller:     domain.Owner(ownerID),
			body:       `{}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"id"`,
		},
		{
			name:   "unknown item",
			caller: domain.Owner(ownerID),
			body:   `{"id":"` + itemID + `"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					MarkItemSold(mock.Anything, itemID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodPost, "/api/items/mark-sold", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
