package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// embedPattern matches markdown image embeds. The single capture group is
// the parenthesized target, i.e. the reference text operated on.
var embedPattern = regexp.MustCompile(`!\[[^\]]*\]\(([^)]*)\)`)

// Document is a markdown file loaded for reference rewriting. Text is held
// with forward-slash separators regardless of how the file was written, so
// matching works uniformly; separators are restored on save.
type Document struct {
	// Path is the absolute location of the file on disk.
	Path string
	// Text is the in-memory content, mutated as references are rewritten.
	Text string
	// Dirty is set once at least one reference has been rewritten.
	Dirty bool
}

// LoadDocument reads the file at path and normalizes path separators in its
// text for uniform matching.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return &Document{
		Path: path,
		Text: strings.ReplaceAll(string(data), `\`, "/"),
	}, nil
}

// FolderKey is the namespace the document's resources are grouped under,
// remotely and in the local mirror: the filename without its extension.
func (d *Document) FolderKey() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// References returns the embed targets in first-to-last order of occurrence.
func (d *Document) References() []string {
	matches := embedPattern.FindAllStringSubmatch(d.Text, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// Rewrite replaces every literal occurrence of ref in the text with url and
// marks the document dirty. Identical reference text is deliberately
// replaced everywhere in a single pass.
func (d *Document) Rewrite(ref, url string) {
	d.Text = strings.ReplaceAll(d.Text, ref, url)
	d.Dirty = true
}

// Save writes the document back to disk. With windowsPaths set, embed
// targets that are not URLs get their separators restored to backslashes;
// the rest of the text is never touched.
func (d *Document) Save(windowsPaths bool) error {
	text := d.Text
	if windowsPaths {
		text = denormalizeTargets(text)
	}
	if err := os.WriteFile(d.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// denormalizeTargets converts forward slashes back to backslashes inside
// embed targets that point at local paths. Targets carrying a URL scheme are
// left alone.
func denormalizeTargets(text string) string {
	return embedPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := embedPattern.FindStringSubmatch(match)
		target := sub[1]
		if strings.Contains(target, "://") {
			return match
		}
		return strings.Replace(match, target, strings.ReplaceAll(target, "/", `\`), 1)
	})
}
