// model/group.go
package model

import "encoding/json"

// GroupDetail is the single-group detail payload attached verbatim onto
// enriched events. Top-level keys beyond data and meta (included, links)
// are kept raw in Extra so the whole upstream document round-trips.
type GroupDetail struct {
	Data Resource       `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *GroupDetail) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if raw, ok := fields["data"]; ok {
		if err := json.Unmarshal(raw, &d.Data); err != nil {
			return err
		}
		delete(fields, "data")
	}
	if raw, ok := fields["meta"]; ok {
		if err := json.Unmarshal(raw, &d.Meta); err != nil {
			return err
		}
		delete(fields, "meta")
	}
	if len(fields) > 0 {
		d.Extra = fields
	}
	return nil
}

func (d GroupDetail) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(d.Extra)+2)
	for k, v := range d.Extra {
		merged[k] = v
	}
	merged["data"] = d.Data
	if d.Meta != nil {
		merged["meta"] = d.Meta
	}
	return json.Marshal(merged)
}

// Candidate attribute paths for a group's representative image, checked in
// order of decreasing resolution.
var groupImagePaths = [][]string{
	{"header_photo", "original"},
	{"header_photo", "large"},
	{"header_photo", "medium"},
	{"photo", "original"},
	{"photo", "large"},
	{"photo", "medium"},
	{"header_photo_url"},
	{"photo_url"},
}

// Image returns the first non-empty string found among the candidate photo
// attributes, if any.
func (d GroupDetail) Image() (string, bool) {
	for _, path := range groupImagePaths {
		if value, ok := lookupString(d.Data.Attributes, path); ok {
			return value, true
		}
	}
	return "", false
}

func lookupString(attributes map[string]any, path []string) (string, bool) {
	var current any = attributes
	for _, segment := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current = node[segment]
	}
	value, ok := current.(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnrollmentRecord is a group's enrollment strategy and auto-closed flag,
// fetched per group and discarded with the request.
type EnrollmentRecord struct {
	Strategy   string
	AutoClosed bool
}

// Enrollment strategies that admit new members to a public listing.
const (
	StrategyRequestToJoin = "request_to_join"
	StrategyOpenSignup    = "open_signup"
)

// Eligible reports whether a merged group belongs in the public listing: its
// enrollment strategy admits signups, its own enrollment_open attribute is
// true (absent counts as true), and the enrollment resource merged from the
// payload does not carry auto_closed.
func Eligible(group Resource, enrollment EnrollmentRecord) bool {
	if enrollment.Strategy != StrategyRequestToJoin && enrollment.Strategy != StrategyOpenSignup {
		return false
	}

	if open, present := group.Attributes["enrollment_open"]; present && open != nil {
		if open != true {
			return false
		}
	}

	return !mergedAutoClosed(group)
}

func mergedAutoClosed(group Resource) bool {
	enrollment, ok := group.Extra["enrollment"].(Resource)
	if !ok {
		return false
	}
	return enrollment.Attributes["auto_closed"] == true
}
