package api

import "time"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Authenticated bool `json:"authenticated"`
}

type ExportJob struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Range     string    `json:"range"`
	Scope     string    `json:"scope"`
	StartedAt time.Time `json:"started_at"`
}

type ExportStatus struct {
	Busy    bool       `json:"busy"`
	Current *ExportJob `json:"current,omitempty"`
}
