// Package challenge holds the practice exercise catalog. The registry
// is immutable process-wide configuration: built once at startup from
// the embedded corpus, ordered by id, never mutated.
package challenge

import (
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"github.com/SebastianBuritica/interviewprep/internal/content"
)

// Descriptor identifies one practice challenge. Body is the Markdown
// the shell renders: brief, requirements, starter template, hints. The
// exercise itself is implemented by the learner outside the app.
type Descriptor struct {
	ID            int
	Name          string
	Slug          string
	EstimatedTime string
	Body          string
}

// Registry is the fixed, ordered set of available challenges.
type Registry struct {
	descriptors []Descriptor
	byID        map[int]int
}

type challengeMeta struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Slug          string `yaml:"slug"`
	EstimatedTime string `yaml:"estimated_time"`
}

// Load builds the registry from a content tree. Invariant violations
// (duplicate or non-positive ids, empty names or bodies, an empty
// registry) are startup errors.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, "challenges")
	if err != nil {
		return nil, fmt.Errorf("read challenges dir: %w", err)
	}

	reg := &Registry{byID: make(map[int]int)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := "challenges/" + entry.Name()
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		doc, err := content.ParseDocument(path, raw)
		if err != nil {
			return nil, err
		}

		var meta challengeMeta
		if err := doc.DecodeMeta(&meta); err != nil {
			return nil, err
		}

		if meta.ID <= 0 {
			return nil, fmt.Errorf("%s: id must be a positive integer, got %d", path, meta.ID)
		}
		if meta.Name == "" {
			return nil, fmt.Errorf("%s: name is required", path)
		}
		if err := content.ValidateSlug(meta.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if meta.EstimatedTime == "" {
			return nil, fmt.Errorf("%s: estimated_time is required", path)
		}
		if strings.TrimSpace(doc.Body) == "" {
			return nil, fmt.Errorf("%s: empty body", path)
		}
		if _, dup := reg.byID[meta.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate challenge id %d", path, meta.ID)
		}

		reg.byID[meta.ID] = len(reg.descriptors)
		reg.descriptors = append(reg.descriptors, Descriptor{
			ID:            meta.ID,
			Name:          meta.Name,
			Slug:          meta.Slug,
			EstimatedTime: meta.EstimatedTime,
			Body:          doc.Body,
		})
	}

	if len(reg.descriptors) == 0 {
		return nil, fmt.Errorf("no challenges found in content tree")
	}

	sort.SliceStable(reg.descriptors, func(i, j int) bool {
		return reg.descriptors[i].ID < reg.descriptors[j].ID
	})
	for i, d := range reg.descriptors {
		reg.byID[d.ID] = i
	}

	return reg, nil
}

// NewRegistry builds a registry directly from descriptors, for callers
// that assemble catalogs in code. Ids must be positive and unique and
// names non-empty; the corpus-level requirements (slug, estimated
// time, body) are Load's concern.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("registry must not be empty")
	}

	reg := &Registry{
		descriptors: slices.Clone(descriptors),
		byID:        make(map[int]int),
	}
	sort.SliceStable(reg.descriptors, func(i, j int) bool {
		return reg.descriptors[i].ID < reg.descriptors[j].ID
	})
	for i, d := range reg.descriptors {
		if d.ID <= 0 {
			return nil, fmt.Errorf("challenge %q: id must be a positive integer, got %d", d.Name, d.ID)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("challenge id %d: name is required", d.ID)
		}
		if _, dup := reg.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate challenge id %d", d.ID)
		}
		reg.byID[d.ID] = i
	}

	return reg, nil
}

// List returns every descriptor in ascending id order. The slice is a
// copy; callers cannot mutate the registry through it.
func (r *Registry) List() []Descriptor {
	return slices.Clone(r.descriptors)
}

// Get returns the descriptor with the given id. The UI only offers ids
// present in the registry, so a miss is a defensive condition, not a
// user-facing error.
func (r *Registry) Get(id int) (Descriptor, error) {
	i, ok := r.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("challenge not found: %d", id)
	}
	return r.descriptors[i], nil
}

// First returns the first descriptor in registry order. Selection
// state defaults to it.
func (r *Registry) First() Descriptor {
	return r.descriptors[0]
}

// Len returns the number of registered challenges.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
