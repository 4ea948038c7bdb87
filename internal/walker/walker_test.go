package walker

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fscout/internal/domain"
)

func TestListChildren(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/root/a.txt", []byte("a"), 0644))
	require.NoError(t, util.WriteFile(fs, "/root/b.txt", []byte("b"), 0644))
	require.NoError(t, fs.MkdirAll("/root/sub", 0755))

	w := New(fs)
	entries, err := w.ListChildren("/root")
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.Entry{
		{Name: "a.txt", Path: "/root/a.txt", IsDir: false},
		{Name: "b.txt", Path: "/root/b.txt", IsDir: false},
		{Name: "sub", Path: "/root/sub", IsDir: true},
	}, entries)
}

func TestListChildrenEmptyDir(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/empty", 0755))

	w := New(fs)
	entries, err := w.ListChildren("/empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListChildrenDoesNotRecurse(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/root/sub/deep.txt", []byte("x"), 0644))

	w := New(fs)
	entries, err := w.ListChildren("/root")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "sub", entries[0].Name)
	assert.True(t, entries[0].IsDir)
}

func TestListChildrenMissingDir(t *testing.T) {
	fs := memfs.New()

	w := New(fs)
	_, err := w.ListChildren("/nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nowhere")
}
