package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptionsExcludesHiddenEntries(t *testing.T) {
	defs := []Def{
		{Name: "visible", Type: stubType{}, Default: ""},
		{Name: "gone", Type: stubType{flags: FlagIsRemoved}, Priv: "removed"},
		{Name: "old", Type: stubType{}, Default: "", Deprecated: "use visible"},
	}
	r, err := New(defs)
	require.NoError(t, err)

	names := r.ListOptionNames()
	assert.Contains(t, names, "visible")
	assert.NotContains(t, names, "gone")
	assert.NotContains(t, names, "old")
}

func TestListOptionsPrefixesNamesWhenToplevel(t *testing.T) {
	defs := []Def{{Name: "visible", Type: stubType{}, Default: ""}}
	r, err := New(defs)
	require.NoError(t, err)
	assert.Contains(t, r.ListOptions(), "--visible")
}

func TestListOptionsOmitsPrefixWhenNotToplevel(t *testing.T) {
	defs := []Def{{Name: "visible", Type: stubType{}, Default: ""}}
	r, err := New(defs)
	require.NoError(t, err)
	r.SetToplevel(false)
	out := r.ListOptions()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "--visible")
}

func TestListOptionNamesIsSorted(t *testing.T) {
	defs := []Def{
		{Name: "zzz", Type: stubType{}, Default: ""},
		{Name: "aaa", Type: stubType{}, Default: ""},
	}
	r, err := New(defs)
	require.NoError(t, err)

	names := r.ListOptionNames()
	idx := func(n string) int {
		for i, v := range names {
			if v == n {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("aaa"), idx("zzz"))
}

func TestIncludeDispatchWithoutCallbackFails(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	err = r.Set("include", "config.toml", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeInvalid, oerr.Code)
}

func TestIncludeDispatchInvokesCallback(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	var gotFile string
	r.SetIncludeCallback(func(root *Root, filename string, flags SetFlags) error {
		gotFile = filename
		return nil
	})

	require.NoError(t, r.Set("include", "config.toml", 0))
	assert.Equal(t, "config.toml", gotFile)
}

func TestProfileBuiltinDispatchesCommaList(t *testing.T) {
	defs := []Def{{Name: "mute", Type: stubType{}, Default: "no"}}
	r, err := New(defs)
	require.NoError(t, err)

	p1, err := r.AddProfile("a")
	require.NoError(t, err)
	require.NoError(t, r.SetProfileOption(p1, "mute", "yes"))

	p2, err := r.AddProfile("b")
	require.NoError(t, err)
	require.NoError(t, r.SetProfileOption(p2, "mute", "yes"))

	require.NoError(t, r.Set("profile", "a,b", 0))

	e, err := r.GetEntry("mute")
	require.NoError(t, err)
	assert.Equal(t, "yes", e.Value())
}

func TestProfileBuiltinDisabledWhenUseProfilesFalse(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	r.SetUseProfiles(false)

	err = r.Set("profile", "anything", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeUnknown, oerr.Code)
}

func TestProfileHelpReturnsExitInfo(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	err = r.Set("profile", "help", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeExitInfo, oerr.Code)
}

func TestShowProfileWithoutParamReturnsMissingParam(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	err = r.Set("show-profile", "", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeMissingParam, oerr.Code)
}

func TestShowProfileUnknownNameReturnsExitInfo(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	err = r.Set("show-profile", "nope", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeExitInfo, oerr.Code)
}

func TestShowProfileKnownNameReturnsExitInfo(t *testing.T) {
	defs := []Def{{Name: "mute", Type: stubType{}, Default: "no"}}
	r, err := New(defs)
	require.NoError(t, err)

	p, err := r.AddProfile("a")
	require.NoError(t, err)
	require.NoError(t, r.SetProfileOption(p, "mute", "yes"))

	err = r.Set("show-profile", "a", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeExitInfo, oerr.Code)
}

func TestListOptionsBuiltinReturnsExit(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	err = r.Set("list-options", "", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeExit, oerr.Code)
}
