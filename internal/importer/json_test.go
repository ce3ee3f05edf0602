package importer_test

import (
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/marks/internal/importer"
)

func TestParseJSON_Valid(t *testing.T) {
	data := `[
		{"id":"f1","title":"Dev","type":"folder","parentId":null,"category":"Work","createdAt":"2025-01-01T00:00:00Z"},
		{"id":"b1","title":"Go","url":"https://www.go.dev","parentId":"f1","category":"Work","createdAt":1735689600000}
	]`

	records, err := importer.ParseJSONBookmarks(strings.NewReader(data))
	assert.NilError(t, err)
	assert.Equal(t, len(records), 2)

	assert.Assert(t, records[0].IsFolder())
	assert.Equal(t, records[1].Domain, "go.dev", "domain derived when missing")
	assert.Equal(t, *records[1].ParentID, "f1")
}

func TestParseJSON_Empty(t *testing.T) {
	records, err := importer.ParseJSONBookmarks(strings.NewReader(`[]`))
	assert.NilError(t, err)
	assert.Equal(t, len(records), 0)
}

func TestParseJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `hello`},
		{"null", `null`},
		{"padded null", "  null\n"},
		{"empty file", ``},
		{"object instead of array", `{"id":"1","title":"x"}`},
		{"array of strings", `["a","b"]`},
		{"missing id", `[{"title":"x"}]`},
		{"missing title", `[{"id":"1"}]`},
		{"unknown type", `[{"id":"1","title":"x","type":"separator"}]`},
		{"bad timestamp", `[{"id":"1","title":"x","createdAt":"soon"}]`},
		{"truncated", `[{"id":"1","title":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.ParseJSONBookmarks(strings.NewReader(tt.data))
			if !errors.Is(err, importer.ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
