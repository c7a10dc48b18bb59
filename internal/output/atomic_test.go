package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nested", "report.json")

	require.NoError(t, WriteFileAtomic(p, []byte(`{"a":1}`)))
	require.NoError(t, WriteFileAtomic(p, []byte(`{"a":2}`)))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(b))

	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	// the target is an existing directory, so the rename fails
	p := filepath.Join(dir, "report.json")
	require.NoError(t, os.Mkdir(p, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p, "keep"), nil, 0o644))

	assert.Error(t, WriteFileAtomic(p, []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name())
}

func TestExpandPath(t *testing.T) {
	got := ExpandPath("out/{job}/{period}.json", "hk", entity.MustPeriod("2512"))
	assert.Equal(t, "out/hk/202512.json", got)
	assert.Equal(t, "static.json", ExpandPath("static.json", "hk", entity.MustPeriod("202512")))
}
