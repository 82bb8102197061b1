package raglite_test

import (
	"encoding/json"
	"testing"

	raglite "github.com/sqltuner/rag-lite"
)

func TestPayloadRoundTripPreservesUnknownKeys(t *testing.T) {
	in := `{
		"messages": [{"role": "user", "content": "optimize this"}],
		"queries": [{"sql": "SELECT 1", "method_name": "ping"}],
		"project": {"name": "shop", "version": 3},
		"trace_id": "abc-123"
	}`

	var p raglite.Payload
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal(round-tripped) error = %v", err)
	}

	if got["trace_id"] != "abc-123" {
		t.Errorf("trace_id = %v, want %q", got["trace_id"], "abc-123")
	}
	project, ok := got["project"].(map[string]any)
	if !ok {
		t.Fatalf("project not preserved: %v", got["project"])
	}
	if project["name"] != "shop" || project["version"] != float64(3) {
		t.Errorf("project = %v, want name=shop version=3", project)
	}
	if _, ok := got["messages"]; !ok {
		t.Error("messages section lost in round trip")
	}
	if _, ok := got["queries"]; !ok {
		t.Error("queries section lost in round trip")
	}
}

func TestPayloadUnmarshalRejectsMalformedSections(t *testing.T) {
	var p raglite.Payload
	if err := json.Unmarshal([]byte(`{"messages": "not a list"}`), &p); err == nil {
		t.Error("expected error for malformed messages section")
	}
}

func TestQueryDescribe(t *testing.T) {
	q := raglite.Query{SQL: "SELECT name FROM users", MethodName: "findAll"}
	want := "SQL: SELECT name FROM users Method: findAll"
	if got := q.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestCodeUnitDescribe(t *testing.T) {
	unit := raglite.CodeUnit{
		"source": "class User {}",
		"name":   "User",
		"fields": []any{"id", "email"},
	}

	want := "fields: [\"id\",\"email\"]\nname: User\nsource: class User {}"
	if got := unit.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestCodeUnitName(t *testing.T) {
	tests := []struct {
		name string
		unit raglite.CodeUnit
		want string
	}{
		{"Present", raglite.CodeUnit{"name": "UserRepository"}, "UserRepository"},
		{"Missing", raglite.CodeUnit{"source": "class X {}"}, "Unknown"},
		{"NotAString", raglite.CodeUnit{"name": 42}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
