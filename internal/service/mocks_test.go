package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}

func (m *MockEquipmentRepo) Replace(ctx context.Context, items []domain.EquipmentItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) List(ctx context.Context) ([]domain.RentalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalRepo) Create(ctx context.Context, rec *domain.RentalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, upd repository.StatusUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepo) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestSubmitted(ctx context.Context, rec *domain.RentalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, rec *domain.RentalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
