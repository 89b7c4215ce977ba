package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okanara/markov/internal/adapters/file"
	"github.com/okanara/markov/pkg/domain"
	"github.com/okanara/markov/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_DefaultPath(t *testing.T) {
	s := file.New("")
	assert.Equal(t, filepath.Join(".markov", "runs"), s.BasePath)
}

func TestFileStore_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)

	run := domain.NewRunRecord("coin-toss", "heads", 1, 1)
	require.NoError(t, store.Save(context.Background(), run))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{run.ID}, ids)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))
	_, err := store.Load(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRunNotFound)
}
