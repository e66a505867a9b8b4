package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a Markdown file split into parsed frontmatter and body.
type Document struct {
	Path string
	Meta map[string]any
	Body string
}

// ParseDocument splits raw Markdown into YAML frontmatter and body.
// Frontmatter is required for every corpus document.
func ParseDocument(path string, raw []byte) (Document, error) {
	fm, body, has, err := splitFrontmatter(string(raw))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if !has {
		return Document{}, fmt.Errorf("%s: missing YAML frontmatter", path)
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return Document{}, fmt.Errorf("%s: invalid frontmatter YAML: %w", path, err)
	}

	return Document{
		Path: path,
		Meta: meta,
		Body: strings.TrimLeft(body, "\r\n"),
	}, nil
}

// DecodeMeta unmarshals the frontmatter into a typed struct.
func (d Document) DecodeMeta(out any) error {
	raw, err := yaml.Marshal(d.Meta)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: frontmatter: %w", d.Path, err)
	}
	return nil
}

// splitFrontmatter separates a leading --- fenced YAML block from the
// document body. Returns has=false when the file does not start with a
// fence.
func splitFrontmatter(s string) (frontmatter, body string, has bool, err error) {
	br := bufio.NewReader(strings.NewReader(s))

	first, ferr := br.ReadString('\n')
	if ferr != nil && !errors.Is(ferr, io.EOF) {
		return "", "", false, fmt.Errorf("read first line: %w", ferr)
	}
	if strings.TrimSpace(strings.TrimRight(first, "\r\n")) != "---" {
		return "", s, false, nil
	}

	var fmLines []string
	foundEnd := false
	for {
		line, lerr := br.ReadString('\n')
		if lerr != nil && !errors.Is(lerr, io.EOF) {
			return "", "", false, fmt.Errorf("read frontmatter line: %w", lerr)
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "---" {
			foundEnd = true
			break
		}
		fmLines = append(fmLines, trimmed)
		if errors.Is(lerr, io.EOF) {
			break
		}
	}

	if !foundEnd {
		return "", "", false, errors.New("unterminated frontmatter (missing closing ---)")
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return "", "", false, fmt.Errorf("read body: %w", err)
	}

	return strings.Join(fmLines, "\n"), string(rest), true, nil
}

// ValidateSlug enforces the kebab-case naming convention used for guide
// slugs and challenge slugs.
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required")
	}
	if len(slug) > 64 {
		return errors.New("slug too long (max 64)")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return errors.New("slug must not start or end with '-'")
	}
	if strings.Contains(slug, "--") {
		return errors.New("slug must not contain consecutive '--'")
	}
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			continue
		}
		return fmt.Errorf("slug contains invalid character %q", string(r))
	}
	return nil
}
