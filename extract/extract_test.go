package extract_test

import (
	"reflect"
	"testing"

	"github.com/sqltuner/rag-lite/extract"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "Lowercases and trims",
			input: []string{"  Users ", "INDEX"},
			want:  []string{"users", "index"},
		},
		{
			name:  "Drops short words",
			input: []string{"id", "ok", "sql"},
			want:  []string{"sql"},
		},
		{
			name:  "Drops stopwords",
			input: []string{"the", "from", "with", "users"},
			want:  []string{"users"},
		},
		{
			name:  "Drops purely numeric words",
			input: []string{"12345", "users2"},
			want:  []string{"users2"},
		},
		{
			name:  "Deduplicates preserving first encounter",
			input: []string{"users", "Index", "USERS", "index"},
			want:  []string{"users", "index"},
		},
		{
			name:  "Empty input",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.Normalize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
