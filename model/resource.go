// model/resource.go
package model

import (
	"bytes"
	"encoding/json"
)

// ResourceIdentifier is a JSON:API relationship stub: just enough to key a
// resource by (type, id).
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship is a JSON:API relationship object. Data holds either a single
// identifier, a list of identifiers, or null; it is kept raw so the upstream
// shape round-trips untouched.
type Relationship struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Links map[string]any  `json:"links,omitempty"`
}

// One returns the relationship's single identifier, if Data is a lone stub.
func (r Relationship) One() (ResourceIdentifier, bool) {
	data := bytes.TrimSpace(r.Data)
	if len(data) == 0 || data[0] != '{' {
		return ResourceIdentifier{}, false
	}
	var id ResourceIdentifier
	if err := json.Unmarshal(data, &id); err != nil || id.ID == "" {
		return ResourceIdentifier{}, false
	}
	return id, true
}

// Many returns the relationship's identifier list, if Data is an array.
func (r Relationship) Many() ([]ResourceIdentifier, bool) {
	data := bytes.TrimSpace(r.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, false
	}
	var ids []ResourceIdentifier
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// Resource is one upstream record. Identity is (Type, ID); the value is never
// mutated after decoding. Extra carries server-side additions (resolved
// relationships, group details, derived image URLs) that are rendered as
// sibling fields next to the upstream ones.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    map[string]any          `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         map[string]any          `json:"links,omitempty"`

	Extra map[string]any `json:"-"`
}

// Key returns the (type, id) identity used by the included-resource lookup.
func (r Resource) Key() string {
	return r.Type + ":" + r.ID
}

// WithExtra returns a copy of the resource with one extra field added. The
// receiver is left untouched; the Extra map is cloned so shared copies never
// observe the addition.
func (r Resource) WithExtra(key string, value any) Resource {
	extra := make(map[string]any, len(r.Extra)+1)
	for k, v := range r.Extra {
		extra[k] = v
	}
	extra[key] = value
	r.Extra = extra
	return r
}

// AttrString returns the named attribute when it is a non-empty string.
func (r Resource) AttrString(name string) (string, bool) {
	v, ok := r.Attributes[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MarshalJSON renders the upstream fields plus any Extra entries as siblings,
// matching the denormalized shape clients consume.
func (r Resource) MarshalJSON() ([]byte, error) {
	type plain Resource
	base, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}
	merged := make(map[string]any, len(r.Extra)+5)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Document is an upstream JSON:API payload. Data may be a single resource or
// a list depending on the endpoint.
type Document struct {
	Data     json.RawMessage `json:"data"`
	Included []Resource      `json:"included,omitempty"`
	Links    map[string]any  `json:"links,omitempty"`
	Meta     map[string]any  `json:"meta,omitempty"`
}

// List decodes Data as a resource list. Non-list payloads yield nil.
func (d *Document) List() []Resource {
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var resources []Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil
	}
	return resources
}

// One decodes Data as a single resource.
func (d *Document) One() (Resource, bool) {
	data := bytes.TrimSpace(d.Data)
	if len(data) == 0 || data[0] != '{' {
		return Resource{}, false
	}
	var resource Resource
	if err := json.Unmarshal(data, &resource); err != nil {
		return Resource{}, false
	}
	return resource, true
}

// LinksOrEmpty mirrors the upstream links object, defaulting to an empty
// object so the envelope never carries a null.
func (d *Document) LinksOrEmpty() map[string]any {
	if d.Links == nil {
		return map[string]any{}
	}
	return d.Links
}

// IncludedOrEmpty returns the included side table, defaulting to an empty
// list so the envelope never carries a null.
func (d *Document) IncludedOrEmpty() []Resource {
	if d.Included == nil {
		return []Resource{}
	}
	return d.Included
}

// HasNext reports whether the upstream signalled a next page.
func (d *Document) HasNext() bool {
	next, ok := d.Links["next"]
	if !ok || next == nil {
		return false
	}
	if s, isString := next.(string); isString {
		return s != ""
	}
	return true
}
