// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// server's startup invariants. PublicURL is filled from HTTPAddress when
// unset.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if strings.TrimSpace(cfg.Storage.Files.MediaDir) == "" {
		return fmt.Errorf("%w: empty media directory", ErrInvalidStorageConfigs)
	}

	if cfg.Media.SignKey == "" {
		return fmt.Errorf("%w: empty sign key", ErrInvalidMediaConfigs)
	}
	if cfg.Media.SlotTTL <= 0 {
		return fmt.Errorf("%w: slot ttl must be positive", ErrInvalidMediaConfigs)
	}
	if cfg.Media.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidMediaConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = "http://" + cfg.Server.HTTPAddress
	}
	cfg.Server.PublicURL = strings.TrimRight(cfg.Server.PublicURL, "/")

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
