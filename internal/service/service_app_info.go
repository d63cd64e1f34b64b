package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

type appInfoService struct {
	version   string
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService remembers the configured version and the moment the
// server started.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return newAppInfoService(cfg.Version, time.Now, logger), nil
}

func newAppInfoService(version string, now func() time.Time, logger *logger.Logger) *appInfoService {
	return &appInfoService{
		version:   version,
		startedAt: now(),
		now:       now,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return models.ServerInfo{
		Version:   s.version,
		StartedAt: s.startedAt.UTC(),
		Uptime:    s.now().Sub(s.startedAt).Truncate(time.Second).String(),
	}
}
