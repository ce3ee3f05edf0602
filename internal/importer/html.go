package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nikbrunner/marks/internal/model"
)

// ParseHTMLBookmarks parses a Netscape bookmark file into flat records.
// Folders precede their contents, so the result can be merged as is. A
// non-empty category is applied to every record; otherwise the first TAGS
// entry is used.
func ParseHTMLBookmarks(r io.Reader, category string) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var records []model.Bookmark

	// Track current folder stack for hierarchy
	var folderStack []*string // stack of folder IDs, nil = root
	var pendingFolder *string // folder waiting to be pushed on next DL

	currentParent := func() *string {
		if len(folderStack) > 0 {
			return folderStack[len(folderStack)-1]
		}
		return nil
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := getTextContent(n)
				if name == "" {
					return
				}
				folder := model.NewFolder(model.NewFolderParams{
					Name:     name,
					ParentID: currentParent(),
					Category: categoryOf(n, category),
				})
				folder.CreatedAt = parseAddDate(n, folder.CreatedAt)
				records = append(records, folder)

				// Pushed when the next DL opens
				id := folder.ID
				pendingFolder = &id
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				link := model.NewLink(model.NewLinkParams{
					Title:    title,
					URL:      href,
					ParentID: currentParent(),
					Category: categoryOf(n, category),
				})
				link.CreatedAt = parseAddDate(n, link.CreatedAt)
				records = append(records, link)
				return

			case "dl":
				pushedFolder := false
				if pendingFolder != nil {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = nil
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder && len(folderStack) > 0 {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return records, nil
}

func categoryOf(n *html.Node, override string) string {
	if override != "" {
		return override
	}
	tags, _, _ := strings.Cut(getAttr(n, "tags"), ",")
	return strings.TrimSpace(tags)
}

// parseAddDate reads the ADD_DATE attribute (unix seconds).
func parseAddDate(n *html.Node, fallback time.Time) time.Time {
	if addDate := getAttr(n, "add_date"); addDate != "" {
		if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
			return time.Unix(ts, 0)
		}
	}
	return fallback
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
