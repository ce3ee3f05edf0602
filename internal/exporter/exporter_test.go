package exporter_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/marks/internal/exporter"
	"github.com/nikbrunner/marks/internal/importer"
	"github.com/nikbrunner/marks/internal/model"
)

func stringPtr(s string) *string { return &s }

func testStore() *model.Store {
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return &model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b0", Title: "Root <Link>", URL: "https://example.com/?a=1&b=2", Domain: "example.com", Type: model.KindLink, Category: "General", CreatedAt: created},
			{ID: "f1", Title: "Dev & Tools", Type: model.KindFolder, Category: "Work", CreatedAt: created},
			{ID: "b1", Title: "Go", URL: "https://go.dev", Domain: "go.dev", Type: model.KindLink, ParentID: stringPtr("f1"), Category: "Work", CreatedAt: created},
		},
	}
}

func TestExportHTML_Structure(t *testing.T) {
	out := exporter.ExportHTML(testStore())

	for _, want := range []string{
		"<!DOCTYPE NETSCAPE-Bookmark-file-1>",
		"<DT><H3 ADD_DATE=\"1736937000\" TAGS=\"Work\">Dev &amp; Tools</H3>",
		"<A HREF=\"https://example.com/?a=1&amp;b=2\" ADD_DATE=\"1736937000\" TAGS=\"General\">Root &lt;Link&gt;</A>",
		"        <DT><A HREF=\"https://go.dev\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	// Stored order: the root link comes before the folder.
	if strings.Index(out, "Root &lt;Link&gt;") > strings.Index(out, "Dev &amp; Tools") {
		t.Error("expected stored order to be preserved")
	}
}

func TestExportHTML_RoundTrip(t *testing.T) {
	records, err := importer.ParseHTMLBookmarks(strings.NewReader(exporter.ExportHTML(testStore())), "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	var folder, nested *model.Bookmark
	for i := range records {
		switch records[i].Title {
		case "Dev & Tools":
			folder = &records[i]
		case "Go":
			nested = &records[i]
		}
	}
	if folder == nil || nested == nil {
		t.Fatal("expected folder and nested link after round trip")
	}
	if nested.ParentID == nil || *nested.ParentID != folder.ID {
		t.Error("expected nested link to stay in its folder")
	}
	if nested.Category != "Work" || folder.Category != "Work" {
		t.Errorf("expected categories to survive, got %q and %q", folder.Category, nested.Category)
	}
	if records[0].URL != "https://example.com/?a=1&b=2" {
		t.Errorf("expected unescaped URL, got %q", records[0].URL)
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	store := testStore()

	var buf bytes.Buffer
	if err := exporter.ExportJSON(&buf, store); err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := importer.ParseJSONBookmarks(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(records) != len(store.Bookmarks) {
		t.Fatalf("expected %d records, got %d", len(store.Bookmarks), len(records))
	}
	for i := range records {
		if records[i].ID != store.Bookmarks[i].ID {
			t.Errorf("order changed at %d: got %q", i, records[i].ID)
		}
	}

	// Re-importing an export adds nothing.
	added, skipped := store.Merge(records)
	if added != 0 || skipped != 3 {
		t.Errorf("expected 0 added 3 skipped, got %d/%d", added, skipped)
	}
}

func TestExportJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := exporter.ExportJSON(&buf, &model.Store{}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}
