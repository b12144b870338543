// model/envelope.go
package model

// Response envelopes are denormalized payloads ready for direct client
// rendering. Pagination fields the caller never asked for stay nil and are
// omitted from the JSON.

// EventsEnvelope is the upcoming-events response.
type EventsEnvelope struct {
	StartsAt  *string        `json:"startsAt"`
	Page      *int           `json:"page,omitempty"`
	Offset    *int           `json:"offset,omitempty"`
	PageSize  *int           `json:"pageSize,omitempty"`
	Events    []Resource     `json:"events"`
	Links     map[string]any `json:"links"`
	NextExist bool           `json:"nextExist"`
	Upcoming  bool           `json:"upcoming"`
}

// GroupsEnvelope is the response for both group listings. For the public
// listing PageSize carries the requested page size, not the over-fetched
// upstream page.
type GroupsEnvelope struct {
	Page      *int           `json:"page,omitempty"`
	Offset    *int           `json:"offset,omitempty"`
	PageSize  *int           `json:"pageSize,omitempty"`
	Groups    []Resource     `json:"groups"`
	Links     map[string]any `json:"links"`
	NextExist bool           `json:"nextExist"`
	Includes  []Resource     `json:"includes"`
}

// SignupsEnvelope is the registration-signups response.
type SignupsEnvelope struct {
	Page      *int           `json:"page,omitempty"`
	Offset    *int           `json:"offset,omitempty"`
	PageSize  *int           `json:"pageSize,omitempty"`
	Signups   []Resource     `json:"signups"`
	Links     map[string]any `json:"links"`
	NextExist bool           `json:"nextExist"`
	Includes  []Resource     `json:"includes"`
}
