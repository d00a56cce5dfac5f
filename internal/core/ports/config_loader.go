package ports

import "go.trai.ch/depfix/internal/core/domain"

// ConfigLoader defines the interface for loading the depfix configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration below root. A missing file yields the defaults.
	Load(root string) (domain.Config, error)
}
