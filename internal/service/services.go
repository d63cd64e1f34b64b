package service

import (
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
)

type Services struct {
	ContactService ContactService
	MediaService   MediaService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The contact service is
// wrapped with validation.
//
// Returns an error when the application version is not configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	media := NewMediaService(storages.BlobRepository, storages.BlobFileStorage, cfg.Media, cfg.Server.PublicURL, logger)
	contacts := NewContactValidationService().Wrap(
		NewContactService(storages.ContactRepository, media, logger),
	)

	return &Services{
		ContactService: contacts,
		MediaService:   media,
		AppInfoService: appInfo,
	}, nil
}
