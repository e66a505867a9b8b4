// Package guides loads the study guide corpus and serves lookups over
// it. The library is built once at startup from embedded Markdown and
// never mutated afterwards.
package guides

import (
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"github.com/SebastianBuritica/interviewprep/internal/content"
)

// Guide is one study guide document.
type Guide struct {
	Slug             string
	Title            string
	Topic            string
	Order            int
	EstimatedMinutes int
	Tags             []string
	Body             string
}

// Topic is a stable topic key with its display name, in fixed catalog
// order.
type Topic struct {
	Key  string
	Name string
}

// Topics is the catalog's topic set in display order. Quiz banks,
// progress tracking, and review scheduling key off these.
var Topics = []Topic{
	{Key: "html", Name: "HTML"},
	{Key: "css", Name: "CSS"},
	{Key: "javascript", Name: "JavaScript"},
	{Key: "apis", Name: "APIs"},
	{Key: "react", Name: "React"},
	{Key: "design-patterns", Name: "Design Patterns"},
	{Key: "typescript", Name: "TypeScript"},
	{Key: "nestjs", Name: "NestJS"},
}

// TopicName returns the display name for a topic key, or the key
// itself when unknown.
func TopicName(key string) string {
	for _, t := range Topics {
		if t.Key == key {
			return t.Name
		}
	}
	return key
}

// ValidTopic reports whether key names a catalog topic.
func ValidTopic(key string) bool {
	for _, t := range Topics {
		if t.Key == key {
			return true
		}
	}
	return false
}

// Library is the loaded guide catalog.
type Library struct {
	guides []Guide
	bySlug map[string]int
}

type guideMeta struct {
	Slug             string   `yaml:"slug"`
	Title            string   `yaml:"title"`
	Topic            string   `yaml:"topic"`
	Order            int      `yaml:"order"`
	EstimatedMinutes int      `yaml:"estimated_minutes"`
	Tags             []string `yaml:"tags"`
}

// Load builds the library from a content tree (the embedded corpus or
// an author override). Validation failures are startup errors: the
// corpus is compiled in, so a bad document is a build bug.
func Load(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, "guides")
	if err != nil {
		return nil, fmt.Errorf("read guides dir: %w", err)
	}

	lib := &Library{bySlug: make(map[string]int)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := "guides/" + entry.Name()
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		doc, err := content.ParseDocument(path, raw)
		if err != nil {
			return nil, err
		}

		var meta guideMeta
		if err := doc.DecodeMeta(&meta); err != nil {
			return nil, err
		}

		if err := content.ValidateSlug(meta.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if meta.Title == "" {
			return nil, fmt.Errorf("%s: title is required", path)
		}
		if !ValidTopic(meta.Topic) {
			return nil, fmt.Errorf("%s: unknown topic %q", path, meta.Topic)
		}
		if strings.TrimSpace(doc.Body) == "" {
			return nil, fmt.Errorf("%s: empty body", path)
		}
		if _, dup := lib.bySlug[meta.Slug]; dup {
			return nil, fmt.Errorf("%s: duplicate slug %q", path, meta.Slug)
		}

		lib.guides = append(lib.guides, Guide{
			Slug:             meta.Slug,
			Title:            meta.Title,
			Topic:            meta.Topic,
			Order:            meta.Order,
			EstimatedMinutes: meta.EstimatedMinutes,
			Tags:             meta.Tags,
			Body:             doc.Body,
		})
	}

	if len(lib.guides) == 0 {
		return nil, fmt.Errorf("no guides found in content tree")
	}

	sort.SliceStable(lib.guides, func(i, j int) bool {
		if lib.guides[i].Order != lib.guides[j].Order {
			return lib.guides[i].Order < lib.guides[j].Order
		}
		return lib.guides[i].Slug < lib.guides[j].Slug
	})
	for i, g := range lib.guides {
		lib.bySlug[g.Slug] = i
	}

	return lib, nil
}

// All returns every guide in catalog order.
func (l *Library) All() []Guide {
	return slices.Clone(l.guides)
}

// Get returns the guide with the given slug.
func (l *Library) Get(slug string) (Guide, error) {
	i, ok := l.bySlug[slug]
	if !ok {
		return Guide{}, fmt.Errorf("guide not found: %q", slug)
	}
	return l.guides[i], nil
}

// ByTopic returns the guides for a topic key in catalog order.
func (l *Library) ByTopic(key string) []Guide {
	var out []Guide
	for _, g := range l.guides {
		if g.Topic == key {
			out = append(out, g)
		}
	}
	return out
}

// Len returns the number of guides in the library.
func (l *Library) Len() int {
	return len(l.guides)
}
