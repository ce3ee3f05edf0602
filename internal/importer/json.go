package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikbrunner/marks/internal/model"
)

// ErrMalformed is returned for import files that are not an array of
// bookmark objects.
var ErrMalformed = errors.New("malformed bookmark file")

// ParseJSONBookmarks reads an exported array of bookmark records. The whole
// file is rejected if any element is unusable.
func ParseJSONBookmarks(r io.Reader) ([]model.Bookmark, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrMalformed, err)
	}
	if elements == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrMalformed)
	}

	records := make([]model.Bookmark, 0, len(elements))
	for i, raw := range elements {
		if s := strings.TrimSpace(string(raw)); !strings.HasPrefix(s, "{") {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrMalformed, i)
		}

		var b model.Bookmark
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
		if strings.TrimSpace(b.ID) == "" {
			return nil, fmt.Errorf("%w: element %d has no id", ErrMalformed, i)
		}
		if strings.TrimSpace(b.Title) == "" {
			return nil, fmt.Errorf("%w: element %d has no title", ErrMalformed, i)
		}
		switch b.Type {
		case "", model.KindLink, model.KindFolder:
		default:
			return nil, fmt.Errorf("%w: element %d has unknown type %q", ErrMalformed, i, b.Type)
		}
		if !b.IsFolder() && b.Domain == "" {
			b.Domain = model.DomainOf(b.URL)
		}
		records = append(records, b)
	}

	return records, nil
}
