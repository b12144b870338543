// audit/model.go
package audit

import "time"

// FetchRecord is one upstream call's outcome, indexed for operational
// lookups. Status 0 means the call never produced a response.
type FetchRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Endpoint   string    `json:"endpoint"`
	URL        string    `json:"url"`
	Status     int       `json:"status"`
	DurationMS int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
}
