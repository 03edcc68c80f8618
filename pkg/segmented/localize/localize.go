// Package localize turns item identifiers into display labels using
// go-i18n message catalogs written in TOML.
//
// Catalog files are named like active.<lang>.toml and map item IDs to
// labels:
//
//	Years = "Jahre"
//	"All Photos" = "Alle Fotos"
//
// IDs without a translation are displayed as is.
package localize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog holds translations for item labels.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog creates an empty catalog whose source language is def.
func NewCatalog(def language.Tag) *Catalog {
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{bundle: bundle}
}

// LoadBytes parses one message file. path only needs the right base name,
// since the language is taken from it.
func (c *Catalog) LoadBytes(data []byte, path string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
		return fmt.Errorf("parse messages %s: %w", path, err)
	}
	return nil
}

// LoadDir loads every *.toml message file in dir.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read locales %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := c.bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("load messages %s: %w", path, err)
		}
	}
	return nil
}

// Languages returns the languages the catalog has messages for.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localizer resolves labels for a preferred language list.
type Localizer struct {
	localizer *i18n.Localizer
}

// Localizer returns a localizer for langs, most preferred first. Entries
// may be tags or Accept-Language strings.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	return &Localizer{localizer: i18n.NewLocalizer(c.bundle, langs...)}
}

// Label returns the display label for id.
func (l *Localizer) Label(id string) string {
	label, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: id},
	})
	if err != nil {
		internal.GetInternalLogger().Debug("label not translated", "id", id, "error", err)
	}
	if label == "" {
		return id
	}
	return label
}

// Labels maps Label over ids.
func (l *Localizer) Labels(ids []string) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = l.Label(id)
	}
	return labels
}
