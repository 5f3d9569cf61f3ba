package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) Storage {
	t.Helper()
	st, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestNewLocal_RequiresDir(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)
}

func TestLocal_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	st := newLocal(t)

	info, err := st.Put(ctx, "resumes/cv-123-abcd.pdf", strings.NewReader("resume body"), PutOptions{ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, "resumes/cv-123-abcd.pdf", info.Key)
	assert.Equal(t, int64(len("resume body")), info.Size)

	rc, got, err := st.Get(ctx, "resumes/cv-123-abcd.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(body))
	assert.Equal(t, info.Size, got.Size)

	require.NoError(t, st.Delete(ctx, "resumes/cv-123-abcd.pdf"))

	_, _, err = st.Get(ctx, "resumes/cv-123-abcd.pdf")
	assert.Error(t, err)
}

func TestLocal_DeleteMissingIsNoop(t *testing.T) {
	st := newLocal(t)
	assert.NoError(t, st.Delete(context.Background(), "resumes/never-existed.pdf"))
}

func TestLocal_RejectsEscapingKeys(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocal(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	_, _, err = st.Get(context.Background(), "../secret.txt")
	assert.Error(t, err)

	// A Put with a traversal key must stay inside the root.
	_, err = st.Put(context.Background(), "../escape.txt", strings.NewReader("x"), PutOptions{})
	if err == nil {
		_, statErr := os.Stat(filepath.Join(dir, "escape.txt"))
		assert.True(t, os.IsNotExist(statErr), "object escaped the storage root")
	}
}

func TestLocal_List(t *testing.T) {
	ctx := context.Background()
	st := newLocal(t)

	_, err := st.Put(ctx, "resumes/a.pdf", strings.NewReader("a"), PutOptions{})
	require.NoError(t, err)
	_, err = st.Put(ctx, "resumes/b.docx", strings.NewReader("b"), PutOptions{})
	require.NoError(t, err)
	_, err = st.Put(ctx, "other/c.txt", strings.NewReader("c"), PutOptions{})
	require.NoError(t, err)

	infos, err := st.List(ctx, "resumes/")
	require.NoError(t, err)
	require.Len(t, infos, 2)

	keys := []string{infos[0].Key, infos[1].Key}
	assert.Contains(t, keys, "resumes/a.pdf")
	assert.Contains(t, keys, "resumes/b.docx")
}

func TestLocal_ListEmptyPrefix(t *testing.T) {
	st := newLocal(t)
	infos, err := st.List(context.Background(), "resumes/")
	require.NoError(t, err)
	assert.Empty(t, infos)
}
