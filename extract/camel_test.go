package extract_test

import (
	"reflect"
	"testing"

	"github.com/sqltuner/rag-lite/extract"
)

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "", nil},
		{"SingleLower", "users", []string{"users"}},
		{"CamelCase", "findUserById", []string{"find", "User", "By", "Id"}},
		{"PascalCase", "UserRepository", []string{"User", "Repository"}},
		{"AcronymThenWord", "HTTPServer", []string{"HTTP", "Server"}},
		{"TrailingAcronym", "parseXML", []string{"parse", "XML"}},
		{"ShortAcronymSplit", "ABCDef", []string{"ABC", "Def"}},
		{"DigitsAreSeparators", "user2Name", []string{"user", "Name"}},
		{"UnderscoreSeparates", "find_user", []string{"find", "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.SplitCamel(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCamel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
