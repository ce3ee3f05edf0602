package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/config"
	"github.com/nikbrunner/marks/internal/fetcher"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/picker"
	"github.com/nikbrunner/marks/internal/search"
	"github.com/nikbrunner/marks/internal/storage"
	"github.com/nikbrunner/marks/internal/tui"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return withEnv(runTUI)
	}

	switch args[0] {
	case "help", "--help", "-h":
		printHelp()
		return nil
	case "add":
		return withEnv(func(e *env) error { return runAdd(e, args[1:]) })
	case "ls":
		return withEnv(func(e *env) error { return runList(e, args[1:]) })
	case "rm":
		return withEnv(func(e *env) error { return runRemove(e, args[1:]) })
	case "import":
		if len(args) < 2 {
			return errors.New("usage: marks import <file.json|file.html>")
		}
		return withEnv(func(e *env) error { return runImport(e, args[1]) })
	case "export":
		return withEnv(func(e *env) error { return runExport(e, args[1:]) })
	case "check":
		return withEnv(runCheck)
	default:
		// Treat as search query (join all remaining args)
		query := strings.Join(args, " ")
		return withEnv(func(e *env) error { return runQuickSearch(e, query) })
	}
}

func printHelp() {
	help := `marks - personal bookmark manager

Usage:
  marks                         Open interactive TUI
  marks <query>                 Quick search → select → open
  marks add <url> [flags]       Add a link (--folder /A/B, --category c, --title t)
  marks ls [flags] [folder]     List a folder (--sort s, --category c, --query q)
  marks rm <id>                 Delete a record (folders recursively)
  marks import <file>           Merge a .json or Netscape .html export
  marks export [path] [--html]  Export as JSON (default) or Netscape HTML
  marks check                   Check every link for dead URLs
  marks help                    Show this help

Sort options: custom, newest, oldest, title, title-desc, domain

TUI Keybindings:
  j/k  move          h/l  back / open        gg/G  top / bottom
  a    add link      A    add folder         e     edit
  C    set category  d    delete             D     clear all
  o    cycle sort    f    cycle category     /     search all folders
  J/K  reorder       x/p  cut / paste        P     place cut item at cursor
  Y    copy URL      c    toggle delete confirmation
  ?    help          q    quit

Configuration:
  ~/.config/marks/config.json, overridden by MARKS_* environment variables
  (MARKS_CONFIG, MARKS_STORAGE, MARKS_DATA_DIR, MARKS_LOG_LEVEL, MARKS_LOG_FILE, ...)
`
	fmt.Print(help)
}

// env bundles what every command needs: config, logger and the open collection.
type env struct {
	cfg        *config.Config
	log        *zap.Logger
	kv         storage.KV
	collection *storage.Collection
}

// withEnv loads config, starts logging and opens storage around fn.
func withEnv(fn func(*env) error) error {
	path, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := logger.New()
	if err := l.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer l.Sync()

	kv, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	l.Log.Debug("storage opened", zap.String("backend", cfg.Storage), zap.String("dir", cfg.DataDir))

	return fn(&env{
		cfg:        cfg,
		log:        l.Log,
		kv:         kv,
		collection: storage.NewCollection(kv, l.Log),
	})
}

func (e *env) fetcher() *fetcher.Fetcher {
	if !e.cfg.FetchTitles {
		return nil
	}
	return fetcher.New(e.cfg.FetchTimeout(), e.log)
}

// runTUI runs the full interactive TUI.
func runTUI(e *env) error {
	ctx := context.Background()
	store, err := e.collection.Load(ctx)
	if err != nil {
		return err
	}
	prefs, err := e.collection.LoadPreferences(ctx)
	if err != nil {
		return err
	}

	params := tui.AppParams{
		Store:       store,
		Persister:   e.collection,
		Preferences: &prefs,
		Logger:      e.log,
	}
	// A nil *fetcher.Fetcher must not become a non-nil interface.
	if f := e.fetcher(); f != nil {
		params.Fetcher = f
	}

	p := tea.NewProgram(tui.NewApp(params), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running app: %w", err)
	}

	// Every change is saved as it happens; this catches a failed save.
	return e.collection.Save(ctx, finalModel.(tui.App).Store())
}

// runQuickSearch performs a fuzzy search and opens the selected link.
func runQuickSearch(e *env, query string) error {
	store, err := e.collection.Load(context.Background())
	if err != nil {
		return err
	}

	results := search.FuzzySearchBookmarks(store, query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return nil
	}

	var selected *model.Bookmark
	if len(results) == 1 {
		selected = results[0].Bookmark
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		finalModel, err := tea.NewProgram(picker.New(results, query)).Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}
		selected = finalModel.(picker.Picker).SelectedBookmark()
	}

	if selected == nil {
		return nil
	}
	return tui.OpenURL(selected.URL)
}
