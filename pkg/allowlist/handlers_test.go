// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package allowlist

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

func newTestAPI(service ServiceInterface, actor string) http.Handler {
	api := NewAPI(
		service,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	router := chi.NewRouter()
	if actor != "" {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithUserEmail(r.Context(), actor)))
			})
		})
	}
	api.RegisterEndpoints(router)
	return router
}

func TestAPI_ListEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		ListEmails(gomock.Any()).
		Return([]*types.AllowedEmail{{Email: member, Role: "member"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/emails", nil)
	rr := httptest.NewRecorder()
	newTestAPI(mockService, admin).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	payload := struct {
		Emails []*types.AllowedEmail `json:"emails"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Emails) != 1 || payload.Emails[0].Email != member {
		t.Errorf("unexpected payload: %+v", payload.Emails)
	}
}

func TestAPI_AddEmail(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"email":"new@example.com","role":"member"}`,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().AddEmail(gomock.Any(), admin, "new@example.com", "member").Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed json",
			body:         `{"email":`,
			setupMock:    func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "not an email address",
			body:         `{"email":"not-an-email","role":"member"}`,
			setupMock:    func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "forbidden role",
			body: `{"email":"new@example.com","role":"admin"}`,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().AddEmail(gomock.Any(), admin, "new@example.com", "admin").Return(ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "duplicate",
			body: `{"email":"new@example.com","role":"member"}`,
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().AddEmail(gomock.Any(), admin, "new@example.com", "member").Return(ErrDuplicateEmail)
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

			req := httptest.NewRequest(http.MethodPost, "/admin/emails", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			newTestAPI(mockService, admin).ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_UpdateRole(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "updated",
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().UpdateRole(gomock.Any(), superAdmin, member, "admin").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "last super admin guard",
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().UpdateRole(gomock.Any(), superAdmin, member, "admin").Return(ErrLastSuperAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "unknown target",
			setupMock: func(m *MockServiceInterface) {
				m.EXPECT().UpdateRole(gomock.Any(), superAdmin, member, "admin").Return(ErrEmailNotFound)
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

			req := httptest.NewRequest(
				http.MethodPatch,
				"/admin/emails/"+member,
				strings.NewReader(`{"role":"admin"}`),
			)
			rr := httptest.NewRecorder()
			newTestAPI(mockService, superAdmin).ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_RemoveEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RemoveEmail(gomock.Any(), superAdmin, member).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/emails/"+member, nil)
	rr := httptest.NewRecorder()
	newTestAPI(mockService, superAdmin).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	payload := map[string]string{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload["status"] != "ok" {
		t.Errorf("expected status ok, got %q", payload["status"])
	}
}

func TestAPI_EscapedEmailParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RemoveEmail(gomock.Any(), superAdmin, member).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/emails/user%40example.com", nil)
	rr := httptest.NewRecorder()
	newTestAPI(mockService, superAdmin).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/admin/emails", strings.NewReader(`{"email":"new@example.com","role":"member"}`))
	rr := httptest.NewRecorder()
	newTestAPI(NewMockServiceInterface(ctrl), "").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}
