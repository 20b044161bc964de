package handlers_test

import (
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

func TestProfileHandler_Me(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     domain.Caller
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "returns profile with joined email",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProfile(mock.Anything, ownerID).
					Return(&domain.Profile{
						UserID:           ownerID,
						Email:            "chidi@c2c.com",
						FirstName:        "Chidi",
						LastName:         "Okafor",
						StateOfResidence: "LA",
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"chidi@c2c.com"`,
		},
		{
			name:       "anonymous rejected",
			caller:     domain.Anonymous(),
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `authentication required`,
		},
		{
			name:   "missing profile",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProfile(mock.Anything, ownerID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `profile not found`,
		},
		{
			name:   "store error",
			caller: domain.Owner(ownerID),
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProfile(mock.Anything, ownerID).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `fetching profile`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, tt.caller)
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodGet, "/api/profile/me/", "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProfileHandler_UpdateMe(t *testing.T) {
	t.Parallel()

	existing := domain.Profile{
		UserID:           ownerID,
		Email:            "chidi@c2c.com",
		FirstName:        "Chidi",
		LastName:         "Okafor",
		StateOfResidence: "LA",
	}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "partial update keeps other fields",
			body: `{"state_of_residence":"FC"}`,
			setupMock: func(m *mocks.MockStore) {
				p := existing
				m.EXPECT().
					GetProfile(mock.Anything, ownerID).
					Return(&p, nil).
					Once()
				m.EXPECT().
					UpdateProfile(mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
						return p.StateOfResidence == "FC" && p.FirstName == "Chidi"
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"FC"`,
		},
		{
			name:       "unknown state rejected",
			body:       `{"state_of_residence":"XX"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown state code`,
		},
		{
			name:       "empty first name rejected",
			body:       `{"first_name":""}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `first_name must not be empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newAPI(t, domain.Owner(ownerID))
			tt.setupMock(ms)

			rec := doJSON(e, http.MethodPatch, "/api/profile/me/", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
