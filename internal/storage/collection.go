package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nikbrunner/marks/internal/model"
)

// Keys under which the collection and preferences are stored.
const (
	BookmarksKey   = "bookmarks"
	PreferencesKey = "preferences"
)

// Collection loads and saves the bookmark store as a JSON array in a KV.
type Collection struct {
	kv  KV
	log *zap.Logger
}

// NewCollection wraps kv. A nil logger disables logging.
func NewCollection(kv KV, log *zap.Logger) *Collection {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection{kv: kv, log: log}
}

// Load reads the store. A missing key yields an empty store.
func (c *Collection) Load(ctx context.Context) (*model.Store, error) {
	data, err := c.kv.Get(ctx, BookmarksKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.log.Debug("no stored bookmarks, starting empty")
			return model.NewStore(), nil
		}
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	var records []model.Bookmark
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	if records == nil {
		records = []model.Bookmark{}
	}

	c.log.Debug("loaded bookmarks", zap.Int("count", len(records)))
	return &model.Store{Bookmarks: records}, nil
}

// Save writes the store in its stored order.
func (c *Collection) Save(ctx context.Context, store *model.Store) error {
	records := store.Bookmarks
	if records == nil {
		records = []model.Bookmark{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := c.kv.Put(ctx, BookmarksKey, data); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}

	c.log.Debug("saved bookmarks", zap.Int("count", len(records)))
	return nil
}

// Preferences holds the user's listing choices between sessions.
type Preferences struct {
	Sort          string `json:"sort"`
	Category      string `json:"category"`
	ConfirmDelete bool   `json:"confirmDelete"`
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() Preferences {
	return Preferences{
		Sort:          "custom",
		Category:      "all",
		ConfirmDelete: true,
	}
}

// LoadPreferences reads preferences, falling back to defaults when none
// are stored or the stored value is unreadable.
func (c *Collection) LoadPreferences(ctx context.Context) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := c.kv.Get(ctx, PreferencesKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("load preferences: %w", err)
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		c.log.Warn("ignoring unreadable preferences", zap.Error(err))
		return DefaultPreferences(), nil
	}
	return prefs, nil
}

// SavePreferences writes preferences.
func (c *Collection) SavePreferences(ctx context.Context, prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := c.kv.Put(ctx, PreferencesKey, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
