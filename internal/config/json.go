package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Media struct {
		SignKey       string   `json:"sign_key"`
		Issuer        string   `json:"issuer"`
		SlotTTL       Duration `json:"slot_ttl"`
		MaxUploadSize int64    `json:"max_upload_size"`
	} `json:"media,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			MediaDir string `json:"media_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the JSON config file. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	f, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	jsonCfg, err := decodeJSONConfig(f)
	if err != nil {
		return nil, err
	}
	return jsonCfg.structured(), nil
}

func decodeJSONConfig(r io.Reader) (*StructuredJSONConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return &jsonCfg, nil
}

func (c *StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: c.App.Version},
		Media: Media{
			SignKey:       c.Media.SignKey,
			Issuer:        c.Media.Issuer,
			SlotTTL:       time.Duration(c.Media.SlotTTL),
			MaxUploadSize: c.Media.MaxUploadSize,
		},
		Storage: Storage{
			DB:    DB{DSN: c.Storage.DB.DSN},
			Files: Files{MediaDir: c.Storage.Files.MediaDir},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			GRPCAddress:    c.Server.GRPCAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			PublicURL:      c.Server.PublicURL,
		},
		Adapter: Adapter{
			HTTPAddress:    c.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PollInterval: time.Duration(c.Workers.PollInterval),
		},
	}
}

// Duration reads either a Go duration string ("30s") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
