package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/nikbrunner/marks/internal/culler"
	"github.com/nikbrunner/marks/internal/exporter"
	"github.com/nikbrunner/marks/internal/fetcher"
	"github.com/nikbrunner/marks/internal/importer"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/view"
	"go.uber.org/zap"
)

// parseFlags parses flags that may appear before or after positional args.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// runAdd adds a link, fetching its title unless one is given.
func runAdd(e *env, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	folder := fs.String("folder", "/", "folder path, e.g. /Dev/Go")
	category := fs.String("category", "", "category label")
	title := fs.String("title", "", "title (fetched from the page when empty)")
	positional, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.New("usage: marks add <url> [--folder path] [--category c] [--title t]")
	}

	ctx := context.Background()
	store, err := e.collection.Load(ctx)
	if err != nil {
		return err
	}
	parentID, err := store.FolderByPath(*folder)
	if err != nil {
		return err
	}

	url := fetcher.NormalizeURL(positional[0])
	if *title == "" {
		if f := e.fetcher(); f != nil {
			*title = f.Title(ctx, url)
		}
	}
	if store.HasURL(url) {
		fmt.Fprintf(os.Stderr, "Note: %s is already saved\n", url)
	}

	link := model.NewLink(model.NewLinkParams{
		Title:    *title,
		URL:      url,
		ParentID: parentID,
		Category: *category,
	})
	if err := store.Add(link); err != nil {
		return err
	}
	if err := e.collection.Save(ctx, store); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s)\n", link.Title, link.ID)
	return nil
}

// runList prints one folder, or every match for --query.
func runList(e *env, args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	sortName := fs.String("sort", "custom", "custom, newest, oldest, title, title-desc, domain")
	category := fs.String("category", view.AllCategories, "only links with this category")
	query := fs.String("query", "", "search every folder for this text")
	positional, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	opt, err := view.ParseSortOption(*sortName)
	if err != nil {
		return err
	}

	store, err := e.collection.Load(context.Background())
	if err != nil {
		return err
	}

	path := "/"
	if len(positional) > 0 {
		path = positional[0]
	}
	parentID, err := store.FolderByPath(path)
	if err != nil {
		return err
	}

	items := view.List(store, view.Filter{
		ParentID: parentID,
		Category: *category,
		Query:    *query,
		Global:   true,
	}, opt)

	printList(os.Stdout, store, items, *query != "")
	return nil
}

func printList(w io.Writer, store *model.Store, items []model.Bookmark, showPath bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range items {
		name := b.Title
		detail := b.URL
		if b.IsFolder() {
			name += "/"
			detail = fmt.Sprintf("%d items", len(store.Children(&b.ID)))
		}
		if showPath {
			detail += "\t" + store.Path(b.ParentID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, name, b.Category, detail)
	}
	_ = tw.Flush()
}

// runRemove deletes a record; folders take their contents with them.
func runRemove(e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: marks rm <id>")
	}

	ctx := context.Background()
	store, err := e.collection.Load(ctx)
	if err != nil {
		return err
	}
	removed, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if err := e.collection.Save(ctx, store); err != nil {
		return err
	}

	fmt.Printf("Deleted %d records\n", len(removed))
	return nil
}

// runImport merges a JSON or Netscape HTML export into the collection.
func runImport(e *env, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var records []model.Bookmark
	freshIDs := false
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm":
		records, err = importer.ParseHTMLBookmarks(file, "")
		freshIDs = true
	default:
		records, err = importer.ParseJSONBookmarks(file)
	}
	if errors.Is(err, importer.ErrMalformed) {
		return fmt.Errorf("import rejected, nothing was changed: %w", err)
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := e.collection.Load(ctx)
	if err != nil {
		return err
	}
	// HTML carries no IDs, so match by folder title and URL instead.
	var known int
	if freshIDs {
		records, known = store.Reconcile(records)
	}
	added, skipped := store.Merge(records)
	skipped += known
	if err := e.collection.Save(ctx, store); err != nil {
		return err
	}

	e.log.Info("import merged", zap.String("file", filePath), zap.Int("added", added), zap.Int("skipped", skipped))
	fmt.Printf("Imported %d records", added)
	if skipped > 0 {
		fmt.Printf(" (%d already present)", skipped)
	}
	fmt.Println()
	return nil
}

// runExport writes the collection as JSON, or Netscape HTML with --html.
func runExport(e *env, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	asHTML := fs.Bool("html", false, "write Netscape bookmark HTML")
	positional, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	ext := "json"
	if *asHTML {
		ext = "html"
	}
	outputPath := ""
	if len(positional) > 0 {
		outputPath = positional[0]
	} else if outputPath, err = exporter.DefaultExportPath(ext); err != nil {
		return fmt.Errorf("default export path: %w", err)
	}

	store, err := e.collection.Load(context.Background())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if *asHTML {
		_, err = io.WriteString(out, exporter.ExportHTML(store))
	} else {
		err = exporter.ExportJSON(out, store)
	}
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Printf("Exported %d records to %s\n", store.Len(), outputPath)
	return nil
}

// runCheck reports dead and unreachable links. Ctrl+C stops early.
func runCheck(e *env) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := e.collection.Load(ctx)
	if err != nil {
		return err
	}

	results := culler.CheckURLs(ctx, store.Links(), culler.Options{
		Concurrency:    e.cfg.CheckConcurrency,
		Timeout:        e.cfg.FetchTimeout(),
		ExcludeDomains: e.cfg.CheckExcludeDomains,
		Logger:         e.log,
		OnProgress: func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\rChecking %d/%d", completed, total)
		},
	})
	fmt.Fprintln(os.Stderr)

	var healthy int
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		if r.Status == culler.Healthy {
			healthy++
			continue
		}
		reason := r.Error
		if r.Status == culler.Dead {
			reason = fmt.Sprintf("HTTP %d", r.StatusCode)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Status, r.Bookmark.ID, r.Bookmark.URL, reason)
	}
	_ = tw.Flush()

	fmt.Printf("%d of %d links healthy\n", healthy, len(results))
	return nil
}
