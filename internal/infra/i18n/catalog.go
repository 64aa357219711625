package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"ai-health-assistant/internal/domain/model"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var LocalesFS embed.FS

// Catalog holds every user-facing string: system/goal notices, validation
// messages, the anonymous-chat canned replies and the nutrition tips. The
// canned table is data, not logic: an exact lower-cased match against the
// replies map, falling back to the default reply.
type Catalog struct {
	messages      map[string]string
	cannedReplies map[string]string
	cannedDefault string
	tips          []model.Tip
}

type catalogFile struct {
	Messages map[string]string `yaml:"messages"`
	Canned   struct {
		Default string            `yaml:"default"`
		Replies map[string]string `yaml:"replies"`
	} `yaml:"canned"`
	Tips []model.Tip `yaml:"tips"`
}

// NewCatalog reads locales/<langCode>.yaml from the given filesystem.
func NewCatalog(fsys fs.FS, langCode string) (*Catalog, error) {
	filePath := filepath.Join("locales", fmt.Sprintf("%s.yaml", langCode))
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if doc.Canned.Default == "" {
		return nil, fmt.Errorf("catalog %s has no default canned reply", filePath)
	}

	return &Catalog{
		messages:      doc.Messages,
		cannedReplies: doc.Canned.Replies,
		cannedDefault: doc.Canned.Default,
		tips:          doc.Tips,
	}, nil
}

// T looks up a message by key, formatting args into it when given.
// Unknown keys return the key itself so a missing entry is visible, not fatal.
func (c *Catalog) T(key string, args ...interface{}) string {
	format, ok := c.messages[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}

// Canned resolves the anonymous assistant reply for an input.
func (c *Catalog) Canned(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if reply, ok := c.cannedReplies[key]; ok {
		return reply
	}
	return c.cannedDefault
}

// Tips returns the nutrition tip catalog in file order.
func (c *Catalog) Tips() []model.Tip { return c.tips }
