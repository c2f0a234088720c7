package settings

import "context"

type SettingsService interface {
	// Get returns the company's settings, falling back to Defaults when none are stored.
	Get(ctx context.Context, companyID string) (CompanyWorkSettings, error)
}
