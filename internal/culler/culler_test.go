package culler_test

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nikbrunner/marks/internal/culler"
	"github.com/nikbrunner/marks/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckURLs(t *testing.T) {
	srv := newServer(t)

	records := []model.Bookmark{
		{ID: "f1", Title: "Folder", Type: model.KindFolder},
		{ID: "b1", Title: "ok", URL: srv.URL + "/ok"},
		{ID: "b2", Title: "gone", URL: srv.URL + "/gone"},
		{ID: "b3", Title: "missing", URL: srv.URL + "/missing"},
		{ID: "b4", Title: "broken", URL: srv.URL + "/broken"},
	}

	var calls atomic.Int32
	results := culler.CheckURLs(context.Background(), records, culler.Options{
		Concurrency: 3,
		Timeout:     2 * time.Second,
		OnProgress:  func(completed, total int) { calls.Add(1) },
	})

	if len(results) != 4 {
		t.Fatalf("expected 4 results (folder skipped), got %d", len(results))
	}
	if calls.Load() != 4 {
		t.Errorf("expected 4 progress calls, got %d", calls.Load())
	}

	want := map[string]culler.Status{
		"b1": culler.Healthy,
		"b2": culler.Dead,
		"b3": culler.Dead,
		"b4": culler.Unreachable,
	}
	for _, r := range results {
		if r.Status != want[r.Bookmark.ID] {
			t.Errorf("%s: got %s, want %s", r.Bookmark.ID, r.Status, want[r.Bookmark.ID])
		}
	}
	if results[3].Error != "Internal Server Error" {
		t.Errorf("expected status text for 500, got %q", results[3].Error)
	}
}

func TestCheckURLs_ExcludedDomain(t *testing.T) {
	srv := newServer(t)

	results := culler.CheckURLs(context.Background(), []model.Bookmark{
		{ID: "b1", URL: srv.URL + "/missing"},
	}, culler.Options{
		Concurrency:    1,
		Timeout:        2 * time.Second,
		ExcludeDomains: []string{"127.0.0.1"},
	})

	if results[0].Status != culler.Unreachable {
		t.Errorf("expected excluded 404 to be unreachable, got %s", results[0].Status)
	}
}

func TestCheckURLs_Cancelled(t *testing.T) {
	srv := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := culler.CheckURLs(ctx, []model.Bookmark{
		{ID: "b1", URL: srv.URL + "/ok"},
	}, culler.Options{Concurrency: 1, Timeout: time.Second})

	if results[0].Status != culler.Unreachable || results[0].Error != "Cancelled" {
		t.Errorf("expected cancelled result, got %+v", results[0])
	}
}

func TestCheckURLs_Empty(t *testing.T) {
	if results := culler.CheckURLs(context.Background(), nil, culler.Options{}); results != nil {
		t.Errorf("expected nil, got %v", results)
	}
}

func TestCheckURLs_LogsUnhealthyLinks(t *testing.T) {
	var stdlog bytes.Buffer
	original := log.Writer()
	log.SetOutput(&stdlog)
	t.Cleanup(func() { log.SetOutput(original) })

	var writerDuringCheck atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		writerDuringCheck.Store(log.Writer())
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	culler.CheckURLs(context.Background(), []model.Bookmark{
		{ID: "b1", URL: srv.URL + "/ok"},
		{ID: "b2", URL: srv.URL + "/missing"},
	}, culler.Options{
		Concurrency: 2,
		Timeout:     2 * time.Second,
		Logger:      zap.New(core),
	})

	if got := writerDuringCheck.Load(); got != io.Writer(&stdlog) {
		t.Errorf("expected the standard logger to stay untouched while checking, got %T", got)
	}
	entries := logs.FilterMessage("link check failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry for the dead link, got %d", len(entries))
	}
	if url := entries[0].ContextMap()["url"]; url != srv.URL+"/missing" {
		t.Errorf("expected dead URL logged, got %v", url)
	}
}
