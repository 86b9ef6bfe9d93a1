package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"camclub-backend/internal/calendar"
	"camclub-backend/internal/domain"
	"camclub-backend/internal/service"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBodies(ctx context.Context, category string) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) ListCompatibleLenses(ctx context.Context, bodyModel string) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx, bodyModel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Submit(ctx context.Context, req service.SubmitRequest) (*domain.RentalRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) Approve(ctx context.Context, id int32, staff string, remark *string) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id, staff, remark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) Reject(ctx context.Context, id int32, staff, reason string) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id, staff, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) Restore(ctx context.Context, id int32, remark *string) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id, remark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) CompleteReturn(ctx context.Context, id int32, remark *string, returnedAt time.Time) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id, remark, returnedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) MarkInProgress(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) List(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}

// MockCalendarService
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) Month(ctx context.Context, year int, month time.Month, privileged bool) (calendar.Month, error) {
	args := m.Called(ctx, year, month, privileged)
	return args.Get(0).(calendar.Month), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockAdminService) ChangePassword(ctx context.Context, newPassword string) error {
	args := m.Called(ctx, newPassword)
	return args.Error(0)
}

func (m *MockAdminService) ReplaceEquipment(ctx context.Context, items []domain.EquipmentItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockAdminService) StaffMembers() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
