package optfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcore/internal/option"
	"optcore/internal/optfile"
)

type stubType struct{ flags option.Flag }

func (s stubType) Name() string       { return "Stub" }
func (s stubType) Size() int          { return 8 }
func (s stubType) Flags() option.Flag { return s.flags }
func (stubType) Parse(dst *option.Cell, text string, _ any) error {
	dst.V = text
	return nil
}
func (s stubType) ParseNode(dst *option.Cell, node *option.Node, priv any) error {
	return s.Parse(dst, node.String(), priv)
}
func (stubType) Copy(dst, src *option.Cell) { dst.V = src.V }
func (stubType) Free(c *option.Cell)        { c.V = "" }
func (stubType) Print(c *option.Cell) string {
	v, _ := c.V.(string)
	return v
}
func (stubType) RequiredParams() int { return 1 }

func newTestRoot(t *testing.T) *option.Root {
	t.Helper()
	r, err := option.New([]option.Def{
		{Name: "volume", Type: stubType{}, Default: "0"},
		{Name: "mute", Type: stubType{}, Default: "no"},
	})
	require.NoError(t, err)
	return r
}

func TestLoadAppliesTopLevelKeysInDeclaredOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("volume = \"70\"\nmute = \"yes\"\n"), 0o644))

	r := newTestRoot(t)
	l := optfile.New(dir)
	require.NoError(t, l.Load(r, "config.toml", 0))

	ev, err := r.GetEntry("volume")
	require.NoError(t, err)
	assert.Equal(t, "70", ev.Value())

	em, err := r.GetEntry("mute")
	require.NoError(t, err)
	assert.Equal(t, "yes", em.Value())
}

func TestLoadResolvesRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested.toml")
	require.NoError(t, os.WriteFile(sub, []byte("volume = \"33\"\n"), 0o644))

	r := newTestRoot(t)
	l := optfile.New(dir)
	require.NoError(t, l.Load(r, "nested.toml", 0))

	e, err := r.GetEntry("volume")
	require.NoError(t, err)
	assert.Equal(t, "33", e.Value())
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	r := newTestRoot(t)
	l := optfile.New(t.TempDir())
	err := l.Load(r, "missing.toml", 0)
	assert.Error(t, err)
}

func TestLoadFailsOnUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("does-not-exist = \"x\"\n"), 0o644))

	r := newTestRoot(t)
	l := optfile.New(dir)
	err := l.Load(r, "bad.toml", 0)
	assert.Error(t, err)
}
