package raglite

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Payload is the JSON-shaped request object being enriched before it is
// forwarded to a language model. All sections are optional; absent sections
// simply contribute nothing to extraction and retrieval. Top-level keys
// this package doesn't know about survive a decode/encode round trip
// untouched.
type Payload struct {
	Queries      []Query    `json:"-"`
	Messages     []Message  `json:"-"`
	Repositories []CodeUnit `json:"-"`
	Entities     []CodeUnit `json:"-"`

	extra map[string]json.RawMessage
}

// Query is a single SQL statement paired with the repository method that
// issues it.
type Query struct {
	SQL        string `json:"sql"`
	MethodName string `json:"method_name"`
}

// Message is a single chat message in the payload's conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CodeUnit is a free-form description of a repository or entity class,
// carrying at least a "name" field.
type CodeUnit map[string]any

// Describe renders the query as a canonical text blob.
func (q Query) Describe() string {
	return fmt.Sprintf("SQL: %s Method: %s", q.SQL, q.MethodName)
}

// Name returns the unit's "name" field, or "Unknown" when it is missing or
// not a string.
func (c CodeUnit) Name() string {
	if name, ok := c["name"].(string); ok && name != "" {
		return name
	}
	return "Unknown"
}

// Describe renders the unit as a deterministic key-sorted "key: value"
// listing. Nested values are rendered as compact JSON, which keeps the
// output stable across runs.
func (c CodeUnit) Describe() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(renderValue(c[k]))
	}
	return sb.String()
}

func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// UnmarshalJSON decodes the known payload sections and stashes every other
// top-level key as raw JSON so MarshalJSON can emit it back unmodified.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	*p = Payload{}
	for key, value := range raw {
		var err error
		switch key {
		case "queries":
			err = json.Unmarshal(value, &p.Queries)
		case "messages":
			err = json.Unmarshal(value, &p.Messages)
		case "repositories":
			err = json.Unmarshal(value, &p.Repositories)
		case "entities":
			err = json.Unmarshal(value, &p.Entities)
		default:
			if p.extra == nil {
				p.extra = make(map[string]json.RawMessage)
			}
			p.extra[key] = value
		}
		if err != nil {
			return fmt.Errorf("failed to decode payload section %q: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON encodes the payload, including any top-level keys preserved
// by UnmarshalJSON.
func (p Payload) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.extra)+4)
	for key, value := range p.extra {
		out[key] = value
	}
	if p.Queries != nil {
		out["queries"] = p.Queries
	}
	if p.Messages != nil {
		out["messages"] = p.Messages
	}
	if p.Repositories != nil {
		out["repositories"] = p.Repositories
	}
	if p.Entities != nil {
		out["entities"] = p.Entities
	}
	return json.Marshal(out)
}
