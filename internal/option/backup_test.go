package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureBackupDedupsByLiveStorageIdentity(t *testing.T) {
	defs := []Def{
		{Name: "vol", Type: stubType{}, Default: "10"},
		{Name: "vol-alias", Type: stubType{flags: FlagIsAlias}, Priv: "vol"},
	}
	r, err := New(defs)
	require.NoError(t, err)

	require.NoError(t, r.BackupOpt("vol"))
	require.NoError(t, r.BackupOpt("vol-alias"))
	assert.Len(t, r.backups, 1, "aliasing the same live storage must not double-backup")
}

func TestEnsureBackupSkipsGlobalOnly(t *testing.T) {
	defs := []Def{{Name: "pid-file", Type: stubType{}, Default: "", Flags: FlagGlobalOnly}}
	r, err := New(defs)
	require.NoError(t, err)

	require.NoError(t, r.BackupOpt("pid-file"))
	assert.Empty(t, r.backups)
}

func TestBackupOptMarksSetLocally(t *testing.T) {
	defs := []Def{{Name: "a", Type: stubType{}, Default: ""}}
	r, err := New(defs)
	require.NoError(t, err)

	require.NoError(t, r.BackupOpt("a"))
	e, err := r.GetEntry("a")
	require.NoError(t, err)
	assert.True(t, e.IsSetLocally())
}

func TestRestoreBackupsRollsBackInLIFOOrder(t *testing.T) {
	defs := []Def{
		{Name: "a", Type: stubType{}, Default: "a0"},
		{Name: "b", Type: stubType{}, Default: "b0"},
	}
	r, err := New(defs)
	require.NoError(t, err)

	r.BackupAll()
	require.NoError(t, r.Set("a", "a1", 0))
	require.NoError(t, r.Set("b", "b1", 0))

	r.RestoreBackups()

	ea, _ := r.GetEntry("a")
	eb, _ := r.GetEntry("b")
	assert.Equal(t, "a0", ea.Value())
	assert.Equal(t, "b0", eb.Value())
	assert.False(t, ea.IsSetLocally())
	assert.False(t, eb.IsSetLocally())
	assert.Empty(t, r.backups)
}
