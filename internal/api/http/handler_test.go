package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"camclub-backend/internal/calendar"
	"camclub-backend/internal/domain"
	"camclub-backend/internal/security"
	"camclub-backend/internal/service"
)

type testHarness struct {
	catalog  *MockCatalogService
	rentals  *MockRentalService
	calendar *MockCalendarService
	admin    *MockAdminService
	tokens   security.TokenManager
	router   http.Handler
}

func newHarness() *testHarness {
	h := &testHarness{
		catalog:  new(MockCatalogService),
		rentals:  new(MockRentalService),
		calendar: new(MockCalendarService),
		admin:    new(MockAdminService),
		tokens:   security.NewTokenManager("test-secret", time.Hour),
	}
	h.router = NewHandler(h.catalog, h.rentals, h.calendar, h.admin, h.tokens).Router()
	return h
}

func (h *testHarness) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *testHarness) staffToken(t *testing.T) string {
	t.Helper()
	token, err := h.tokens.GenerateStaffToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestSubmitRental(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Submit", mock.Anything, mock.AnythingOfType("service.SubmitRequest")).
			Return(&domain.RentalRecord{ID: 1, Status: domain.RentalStatusPending}, nil)

		rec := h.do(t, http.MethodPost, "/api/rentals", service.SubmitRequest{Applicant: "민지"}, "")
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got domain.RentalRecord
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int32(1), got.ID)
	})

	t.Run("ValidationErrorIs400", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Submit", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("start_date", "must be YYYY-MM-DD"))

		rec := h.do(t, http.MethodPost, "/api/rentals", service.SubmitRequest{}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "start_date")
	})

	t.Run("ConflictIs409", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

		rec := h.do(t, http.MethodPost, "/api/rentals", service.SubmitRequest{}, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("MalformedBodyIs400", func(t *testing.T) {
		h := newHarness()
		req := httptest.NewRequest(http.MethodPost, "/api/rentals", bytes.NewBufferString("{nope"))
		rec := httptest.NewRecorder()
		h.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StoreFailureIs500", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Submit", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		rec := h.do(t, http.MethodPost, "/api/rentals", service.SubmitRequest{}, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal error")
	})
}

func TestCatalogEndpoints(t *testing.T) {
	t.Run("BodiesByCategory", func(t *testing.T) {
		h := newHarness()
		h.catalog.On("ListBodies", mock.Anything, "미러리스").
			Return([]domain.EquipmentItem{{Model: "EOS R5"}}, nil)

		rec := h.do(t, http.MethodGet, "/api/equipment/bodies?category=미러리스", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "EOS R5")
	})

	t.Run("LensesForUnknownBody", func(t *testing.T) {
		h := newHarness()
		h.catalog.On("ListCompatibleLenses", mock.Anything, "X-T5").Return(nil, domain.ErrNotFound)

		rec := h.do(t, http.MethodGet, "/api/equipment/lenses?body=X-T5", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCalendarEndpoints(t *testing.T) {
	t.Run("PublicIsNotPrivileged", func(t *testing.T) {
		h := newHarness()
		h.calendar.On("Month", mock.Anything, 2025, time.March, false).
			Return(calendar.Month{Year: 2025, Month: 3}, nil)

		rec := h.do(t, http.MethodGet, "/api/calendar/2025/3", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		h.calendar.AssertExpectations(t)
	})

	t.Run("StaffIsPrivileged", func(t *testing.T) {
		h := newHarness()
		h.calendar.On("Month", mock.Anything, 2025, time.March, true).
			Return(calendar.Month{Year: 2025, Month: 3}, nil)

		rec := h.do(t, http.MethodGet, "/api/admin/calendar/2025/3", nil, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
		h.calendar.AssertExpectations(t)
	})

	t.Run("MonthOutOfRange", func(t *testing.T) {
		h := newHarness()
		rec := h.do(t, http.MethodGet, "/api/calendar/2025/13", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStaffAuth(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		h := newHarness()
		rec := h.do(t, http.MethodGet, "/api/admin/rentals", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		h := newHarness()
		rec := h.do(t, http.MethodGet, "/api/admin/rentals", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("List", mock.Anything, domain.RentalStatusPending).
			Return([]domain.RentalRecord{{ID: 1}}, nil)

		rec := h.do(t, http.MethodGet, "/api/admin/rentals?status=PENDING", nil, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
		h.rentals.AssertExpectations(t)
	})
}

func TestTriageEndpoints(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Approve", mock.Anything, int32(5), "김담당", (*string)(nil)).
			Return(&domain.RentalRecord{ID: 5, Status: domain.RentalStatusConfirmed}, nil)

		rec := h.do(t, http.MethodPost, "/api/admin/rentals/5/approve",
			map[string]string{"staff": "김담당"}, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("RejectCarriesReason", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Reject", mock.Anything, int32(5), "이담당", "장비 점검").
			Return(&domain.RentalRecord{ID: 5, Status: domain.RentalStatusRejected}, nil)

		rec := h.do(t, http.MethodPost, "/api/admin/rentals/5/reject",
			map[string]string{"staff": "이담당", "reason": "장비 점검"}, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("InvalidTransitionIs409", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("Restore", mock.Anything, int32(5), (*string)(nil)).
			Return(nil, domain.ErrInvalidTransition)

		rec := h.do(t, http.MethodPost, "/api/admin/rentals/5/restore",
			map[string]string{}, h.staffToken(t))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ReturnStampsServerTime", func(t *testing.T) {
		h := newHarness()
		h.rentals.On("CompleteReturn", mock.Anything, int32(5), (*string)(nil), mock.AnythingOfType("time.Time")).
			Return(&domain.RentalRecord{ID: 5, Status: domain.RentalStatusReturned}, nil)

		rec := h.do(t, http.MethodPost, "/api/admin/rentals/5/return",
			map[string]string{}, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
		h.rentals.AssertExpectations(t)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		h := newHarness()
		h.admin.On("Login", mock.Anything, "club1234").Return("a.b.c", nil)

		rec := h.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "club1234"}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "a.b.c")
	})

	t.Run("LoginRejected", func(t *testing.T) {
		h := newHarness()
		h.admin.On("Login", mock.Anything, "wrong").Return("", domain.ErrInvalidCredentials)

		rec := h.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "wrong"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ReplaceEquipment", func(t *testing.T) {
		h := newHarness()
		items := []domain.EquipmentItem{{Model: "EOS R5", Kind: domain.KindBody}}
		h.admin.On("ReplaceEquipment", mock.Anything, items).Return(nil)

		rec := h.do(t, http.MethodPut, "/api/admin/equipment", items, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ListStaff", func(t *testing.T) {
		h := newHarness()
		h.admin.On("StaffMembers").Return([]string{"김담당"})

		rec := h.do(t, http.MethodGet, "/api/admin/staff", nil, h.staffToken(t))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "김담당")
	})
}
