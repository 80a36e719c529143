// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/internal/types"
	"github.com/canonical/booking-service/pkg/authentication"
)

func newTestAPI(service ServiceInterface, email string) http.Handler {
	api := NewAPI(
		service,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	router := chi.NewRouter()
	if email != "" {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithUserEmail(r.Context(), email)))
			})
		})
	}
	api.RegisterEndpoints(router)
	return router
}

func TestAPI_ListBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "user@example.com"
	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		ListUserBookings(gomock.Any(), email).
		Return([]*types.Booking{{ID: "booking-1", Email: email}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rr := httptest.NewRecorder()
	newTestAPI(mockService, email).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	payload := struct {
		Bookings []*types.Booking `json:"bookings"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Bookings) != 1 || payload.Bookings[0].ID != "booking-1" {
		t.Errorf("unexpected payload: %+v", payload.Bookings)
	}
}

func TestAPI_ListBookingsNoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rr := httptest.NewRecorder()
	newTestAPI(NewMockServiceInterface(ctrl), "").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestAPI_CreateBooking(t *testing.T) {
	email := "user@example.com"
	validBody := `{"room_id":"room-910","date":"2026-04-15","start":"10:00","duration":1,"tz_offset":0}`

	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().
					CreateBooking(gomock.Any(), email, gomock.Any()).
					Return(&types.Booking{ID: "booking-1", Email: email, RoomID: "room-910"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed json",
			body:         `{"room_id":`,
			setupMock:    func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing fields fail validation",
			body:         `{"room_id":"room-910","duration":1}`,
			setupMock:    func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unsupported duration fails validation",
			body:         `{"room_id":"room-910","date":"2026-04-15","start":"10:00","duration":3}`,
			setupMock:    func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "window violation",
			body: validBody,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().
					CreateBooking(gomock.Any(), email, gomock.Any()).
					Return(nil, ErrTooFarAhead)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "second active booking",
			body: validBody,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().
					CreateBooking(gomock.Any(), email, gomock.Any()).
					Return(nil, ErrActiveBookingExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "lost race",
			body: validBody,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().
					CreateBooking(gomock.Any(), email, gomock.Any()).
					Return(nil, ErrRoomUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			newTestAPI(mockService, email).ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}

			if tt.expectedCode >= http.StatusBadRequest {
				payload := map[string]string{}
				if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
					t.Fatal(err)
				}
				if payload["error"] == "" {
					t.Error("expected an error message in the body")
				}
			}
		})
	}
}

func TestAPI_CancelBooking(t *testing.T) {
	email := "user@example.com"

	tests := []struct {
		name         string
		setupMock    func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().CancelBooking(gomock.Any(), email, "booking-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().CancelBooking(gomock.Any(), email, "booking-1").Return(ErrBookingNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/bookings/booking-1", nil)
			rr := httptest.NewRecorder()
			newTestAPI(mockService, email).ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}

			if tt.expectedCode == http.StatusOK {
				payload := map[string]string{}
				if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
					t.Fatal(err)
				}
				if payload["status"] != "ok" {
					t.Errorf("expected status ok, got %q", payload["status"])
				}
			}
		})
	}
}
