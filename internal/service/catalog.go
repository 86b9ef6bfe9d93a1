package service

import (
	"context"
	"fmt"

	"camclub-backend/internal/catalog"
	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

type catalogService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewCatalogService(equipmentRepo repository.EquipmentRepository) CatalogService {
	return &catalogService{equipmentRepo: equipmentRepo}
}

func (s *catalogService) ListBodies(ctx context.Context, category string) ([]domain.EquipmentItem, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Bodies(items, category), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.BodyCategories(items), nil
}

func (s *catalogService) ListCompatibleLenses(ctx context.Context, bodyModel string) ([]domain.EquipmentItem, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var body *domain.EquipmentItem
	if bodyModel != "" {
		if body = catalog.FindBody(items, bodyModel); body == nil {
			return nil, fmt.Errorf("%w: body %q", domain.ErrNotFound, bodyModel)
		}
	}
	return catalog.CompatibleLenses(items, body), nil
}
