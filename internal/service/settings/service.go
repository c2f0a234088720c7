package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	defaults settings.Defaults
}

func NewSettingsService(repo settings.SettingsRepository, defaults settings.Defaults) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: repo,
		defaults:           defaults,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context, companyID string) (settings.CompanyWorkSettings, error) {
	cs, err := s.SettingsRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.FromDefaults(companyID, s.defaults), nil
		}
		return settings.CompanyWorkSettings{}, fmt.Errorf("failed to get company work settings: %w", err)
	}
	return cs.WithDefaults(s.defaults), nil
}
