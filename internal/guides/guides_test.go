package guides

import (
	"testing"
	"testing/fstest"

	"github.com/SebastianBuritica/interviewprep/internal/content"
)

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"guides/javascript.md": &fstest.MapFile{Data: []byte(
			"---\nslug: javascript\ntitle: JavaScript Fundamentals\ntopic: javascript\norder: 3\nestimated_minutes: 40\ntags: [closures, promises]\n---\n# JS\n\nBody.\n")},
		"guides/html.md": &fstest.MapFile{Data: []byte(
			"---\nslug: html\ntitle: HTML Essentials\ntopic: html\norder: 1\nestimated_minutes: 25\ntags: [semantics]\n---\n# HTML\n\nBody.\n")},
		"guides/css.md": &fstest.MapFile{Data: []byte(
			"---\nslug: css\ntitle: CSS Deep Dive\ntopic: css\norder: 2\nestimated_minutes: 30\ntags: [layout, grid]\n---\n# CSS\n\nBody.\n")},
	}
}

func TestLoadOrdersByOrderField(t *testing.T) {
	lib, err := Load(testFS(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	all := lib.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 guides, got %d", len(all))
	}

	want := []string{"html", "css", "javascript"}
	for i, slug := range want {
		if all[i].Slug != slug {
			t.Errorf("position %d: expected %q, got %q", i, slug, all[i].Slug)
		}
	}
}

func TestLoadRejectsUnknownTopic(t *testing.T) {
	fsys := testFS(t)
	fsys["guides/bad.md"] = &fstest.MapFile{Data: []byte(
		"---\nslug: bad\ntitle: Bad\ntopic: cobol\norder: 9\n---\nbody\n")}

	if _, err := Load(fsys); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestLoadRejectsDuplicateSlug(t *testing.T) {
	fsys := testFS(t)
	fsys["guides/dup.md"] = &fstest.MapFile{Data: []byte(
		"---\nslug: html\ntitle: Duplicate\ntopic: html\norder: 9\n---\nbody\n")}

	if _, err := Load(fsys); err == nil {
		t.Fatal("expected error for duplicate slug")
	}
}

func TestGet(t *testing.T) {
	lib, err := Load(testFS(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	g, err := lib.Get("css")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g.Title != "CSS Deep Dive" {
		t.Errorf("expected CSS Deep Dive, got %q", g.Title)
	}

	if _, err := lib.Get("missing"); err == nil {
		t.Error("expected error for missing slug")
	}
}

func TestSearchSubstring(t *testing.T) {
	lib, err := Load(testFS(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	hits := lib.Search("deep")
	if len(hits) != 1 || hits[0].Slug != "css" {
		t.Errorf("expected [css], got %v", slugs(hits))
	}

	hits = lib.Search("grid") // tag match
	if len(hits) != 1 || hits[0].Slug != "css" {
		t.Errorf("expected [css] via tag, got %v", slugs(hits))
	}
}

func TestSearchFuzzy(t *testing.T) {
	lib, err := Load(testFS(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// One transposition away from "html".
	hits := lib.Search("htlm")
	if len(hits) == 0 || hits[0].Slug != "html" {
		t.Errorf("expected fuzzy hit on html, got %v", slugs(hits))
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	lib, err := Load(testFS(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(lib.Search("  ")); got != lib.Len() {
		t.Errorf("expected full catalog, got %d of %d", got, lib.Len())
	}
}

func TestEmbeddedCorpusLoads(t *testing.T) {
	lib, err := Load(content.FS())
	if err != nil {
		t.Fatalf("Load embedded corpus: %v", err)
	}
	if lib.Len() != 8 {
		t.Errorf("expected 8 embedded guides, got %d", lib.Len())
	}
	for _, topic := range Topics {
		if len(lib.ByTopic(topic.Key)) == 0 {
			t.Errorf("topic %q has no guides", topic.Key)
		}
	}
}

func slugs(gs []Guide) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Slug
	}
	return out
}
