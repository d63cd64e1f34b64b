package models

import "time"

// ServerInfo is the body of GET /api/version.
type ServerInfo struct {
	Version   string    `json:"version"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime"`
}
