package syncer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument_NormalizesSeparators(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte(`![x](imgs\cover.png)`), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "![x](imgs/cover.png)", doc.Text)
	assert.False(t, doc.Dirty)
}

func TestDocument_FolderKey(t *testing.T) {
	doc := &Document{Path: filepath.Join("some", "dir", "my-post.md")}
	assert.Equal(t, "my-post", doc.FolderKey())
}

func TestDocument_References(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "single embed",
			text:   "before ![alt](img1.png) after",
			expect: []string{"img1.png"},
		},
		{
			name:   "order of occurrence",
			text:   "![a](one.png) text ![b](two.jpg) ![](three.gif)",
			expect: []string{"one.png", "two.jpg", "three.gif"},
		},
		{
			name:   "duplicates preserved",
			text:   "![a](same.png) ![b](same.png)",
			expect: []string{"same.png", "same.png"},
		},
		{
			name:   "plain links ignored",
			text:   "[not an image](doc.pdf)",
			expect: []string{},
		},
		{
			name:   "no references",
			text:   "just text",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Text: tt.text}
			assert.Equal(t, tt.expect, doc.References())
		})
	}
}

func TestDocument_Rewrite_ReplacesAllOccurrences(t *testing.T) {
	doc := &Document{Text: "![a](same.png) and ![b](same.png)"}
	doc.Rewrite("same.png", "https://cdn.example.com/images/p/same.png")

	assert.Equal(t,
		"![a](https://cdn.example.com/images/p/same.png) and ![b](https://cdn.example.com/images/p/same.png)",
		doc.Text)
	assert.True(t, doc.Dirty)
}

func TestDenormalizeTargets(t *testing.T) {
	text := `![local](imgs/sub/pic.png) and ![remote](https://cdn.example.com/images/pic.png)`

	out := denormalizeTargets(text)
	assert.Equal(t, `![local](imgs\sub\pic.png) and ![remote](https://cdn.example.com/images/pic.png)`, out,
		"URL targets must keep their forward slashes")
}

func TestDocument_Save_WindowsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	doc := &Document{
		Path:  path,
		Text:  "![x](imgs/pic.png) ![y](https://cdn.example.com/a/b.png)",
		Dirty: true,
	}

	require.NoError(t, doc.Save(true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `![x](imgs\pic.png) ![y](https://cdn.example.com/a/b.png)`, string(data))
}
