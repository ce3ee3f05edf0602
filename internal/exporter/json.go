package exporter

import (
	"encoding/json"
	"io"

	"github.com/nikbrunner/marks/internal/model"
)

// ExportJSON writes the store as an indented JSON array of records in
// stored order, the format ParseJSONBookmarks reads back.
func ExportJSON(w io.Writer, store *model.Store) error {
	records := store.Bookmarks
	if records == nil {
		records = []model.Bookmark{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
