package main

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/nikbrunner/marks/internal/model"
	"gotest.tools/v3/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		positional []string
		folder     string
	}{
		{"flags first", []string{"--folder", "/Dev", "https://go.dev"}, []string{"https://go.dev"}, "/Dev"},
		{"flags last", []string{"https://go.dev", "--folder", "/Dev"}, []string{"https://go.dev"}, "/Dev"},
		{"no flags", []string{"a", "b"}, []string{"a", "b"}, "/"},
		{"empty", nil, nil, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			folder := fs.String("folder", "/", "")
			got, err := parseFlags(fs, tt.args)
			assert.NilError(t, err)
			assert.DeepEqual(t, got, tt.positional)
			assert.Equal(t, *folder, tt.folder)
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := parseFlags(fs, []string{"x", "--nope"})
	assert.ErrorContains(t, err, "nope")
}

func TestPrintList(t *testing.T) {
	store := model.NewStore()
	folder := model.NewFolder(model.NewFolderParams{Name: "Dev"})
	assert.NilError(t, store.Add(folder))
	link := model.NewLink(model.NewLinkParams{Title: "Go", URL: "https://go.dev", ParentID: &folder.ID})
	assert.NilError(t, store.Add(link))

	var buf bytes.Buffer
	printList(&buf, store, store.Bookmarks, true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Assert(t, strings.Contains(lines[0], "Dev/"))
	assert.Assert(t, strings.Contains(lines[0], "1 items"))
	assert.Assert(t, strings.Contains(lines[1], "https://go.dev"))
	assert.Assert(t, strings.Contains(lines[1], "/Dev"))
}
