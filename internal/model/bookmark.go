package model

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates links from folders.
type Kind string

const (
	KindLink   Kind = "link"
	KindFolder Kind = "folder"
)

// DefaultCategory is assigned to records created without a category.
const DefaultCategory = "General"

// Bookmark is a stored link or folder. Folders hold other records through
// the ParentID of their children; nothing is nested in storage.
type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	Domain    string    `json:"domain,omitempty"`
	Type      Kind      `json:"type,omitempty"`
	ParentID  *string   `json:"parentId"` // nil = root level
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsFolder reports whether the record is a folder. Records without a type
// are links.
func (b Bookmark) IsFolder() bool {
	return b.Type == KindFolder
}

// UnmarshalJSON accepts createdAt either as an RFC3339 string or as epoch
// milliseconds, and numeric ids, which is what older exports contain.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	type alias Bookmark
	var raw struct {
		alias
		ID        json.RawMessage `json:"id"`
		ParentID  json.RawMessage `json:"parentId"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Bookmark(raw.alias)

	id, err := decodeID(raw.ID)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if id != nil {
		b.ID = *id
	}
	if b.ParentID, err = decodeID(raw.ParentID); err != nil {
		return fmt.Errorf("parentId: %w", err)
	}
	if b.CreatedAt, err = decodeTime(raw.CreatedAt); err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	return nil
}

// decodeID reads a string or number id. null or absent yields nil.
func decodeID(raw json.RawMessage) (*string, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil, nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		return &str, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	str := n.String()
	return &str, nil
}

func decodeTime(raw json.RawMessage) (time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return time.Time{}, err
		}
		if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
			return time.UnixMilli(ms), nil
		}
		return time.Parse(time.RFC3339Nano, str)
	}

	ms, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(ms)), nil
}

// NewLinkParams holds parameters for creating a new link.
type NewLinkParams struct {
	Title    string
	URL      string
	ParentID *string
	Category string
}

// NewLink creates a link with generated UUID and creation time. The domain
// is derived from the URL and doubles as the title when none is given.
func NewLink(params NewLinkParams) Bookmark {
	domain := DomainOf(params.URL)
	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = domain
	}
	if title == "" {
		title = params.URL
	}

	return Bookmark{
		ID:        GenerateUUID(),
		Title:     title,
		URL:       params.URL,
		Domain:    domain,
		Type:      KindLink,
		ParentID:  params.ParentID,
		Category:  categoryOrDefault(params.Category),
		CreatedAt: time.Now(),
	}
}

// NewFolderParams holds parameters for creating a new folder.
type NewFolderParams struct {
	Name     string
	ParentID *string
	Category string
}

// NewFolder creates a folder with generated UUID and creation time.
func NewFolder(params NewFolderParams) Bookmark {
	return Bookmark{
		ID:        GenerateUUID(),
		Title:     strings.TrimSpace(params.Name),
		Type:      KindFolder,
		ParentID:  params.ParentID,
		Category:  categoryOrDefault(params.Category),
		CreatedAt: time.Now(),
	}
}

// DomainOf returns the lower-cased host of rawURL without a leading "www.".
// A missing scheme is tolerated. Returns "" when no host can be found.
func DomainOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func categoryOrDefault(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultCategory
	}
	return c
}
