package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
	"camclub-backend/internal/security"
)

type adminService struct {
	settingsRepo  repository.SettingsRepository
	equipmentRepo repository.EquipmentRepository
	tokens        security.TokenManager
	staff         []string
}

func NewAdminService(
	settingsRepo repository.SettingsRepository,
	equipmentRepo repository.EquipmentRepository,
	tokens security.TokenManager,
	staff []string,
) AdminService {
	return &adminService{
		settingsRepo:  settingsRepo,
		equipmentRepo: equipmentRepo,
		tokens:        tokens,
		staff:         staff,
	}
}

func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	stored, err := s.settingsRepo.Get(ctx, domain.SettingAdminPassword)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !passwordMatches(stored, password) {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.GenerateStaffToken()
}

// passwordMatches accepts a bcrypt hash or, for settings rows predating this
// service, the plaintext value compared in constant time.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (s *adminService) ChangePassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < 4 {
		return domain.NewValidationError("password", "too short")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.settingsRepo.Set(ctx, domain.SettingAdminPassword, string(hash))
}

func (s *adminService) ReplaceEquipment(ctx context.Context, items []domain.EquipmentItem) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Model == "" {
			return domain.NewValidationError("model", "required")
		}
		if seen[it.Model] {
			return domain.NewValidationError("model", fmt.Sprintf("duplicate model %q", it.Model))
		}
		seen[it.Model] = true
		if it.Kind != domain.KindBody && it.Kind != domain.KindLens {
			return domain.NewValidationError("kind", fmt.Sprintf("unknown kind %q for %q", it.Kind, it.Model))
		}
	}
	return s.equipmentRepo.Replace(ctx, items)
}

func (s *adminService) StaffMembers() []string {
	return s.staff
}
