package settings

import "context"

type SettingsRepository interface {
	// GetByCompanyID returns ErrSettingsNotFound when the company has no settings row.
	GetByCompanyID(ctx context.Context, companyID string) (CompanyWorkSettings, error)
}
