package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func audioSchema() []Def {
	return []Def{
		{Name: "mute", Type: stubType{}, Default: "no"},
		{
			Name: "audio",
			Type: groupStub{},
			Children: &SubOptions{
				Definitions: []Def{
					{Name: "device", Type: stubType{}, Default: "default"},
					{Name: "volume", Type: stubType{}, Default: "100"},
				},
			},
		},
	}
}

func TestCacheAllocTopLevelMirrorsWholeSchema(t *testing.T) {
	r, err := New(audioSchema())
	require.NoError(t, err)
	r.CreateShadow()

	c, err := r.CacheAlloc("")
	require.NoError(t, err)
	// mute + audio + audio-device + audio-volume: the four built-in
	// meta-options (§4.3 step 3) are not part of the user schema and are
	// never mirrored into a Cache.
	assert.Equal(t, 4, c.Opts().Count())
}

func TestCacheAllocScopedToGroupExcludesSiblings(t *testing.T) {
	r, err := New(audioSchema())
	require.NoError(t, err)
	r.CreateShadow()

	c, err := r.CacheAlloc("audio")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Opts().Count())

	_, err = c.Opts().GetEntry("mute")
	assert.Error(t, err)
	_, err = c.Opts().GetEntry("audio-device")
	require.NoError(t, err)
}

func TestCacheAllocRejectsNonGroupName(t *testing.T) {
	r, err := New(audioSchema())
	require.NoError(t, err)
	_, err = r.CacheAlloc("mute")
	assert.Error(t, err)
}

func TestCacheRefreshPropagatesScopedValues(t *testing.T) {
	r, err := New(audioSchema())
	require.NoError(t, err)
	r.CreateShadow()

	c, err := r.CacheAlloc("audio")
	require.NoError(t, err)

	require.NoError(t, r.Set("audio-volume", "42", 0))
	assert.True(t, c.Refresh())

	e, err := c.Opts().GetEntry("audio-volume")
	require.NoError(t, err)
	assert.Equal(t, "42", e.Value())
}

func TestDuplicateMirrorsCurrentValues(t *testing.T) {
	r, err := New(audioSchema())
	require.NoError(t, err)
	require.NoError(t, r.Set("audio-volume", "55", 0))

	dup, err := r.Duplicate()
	require.NoError(t, err)

	src, err := r.GetEntry("audio-volume")
	require.NoError(t, err)
	dst, err := dup.GetEntry("audio-volume")
	require.NoError(t, err)
	assert.Equal(t, src.Value(), dst.Value())

	require.NoError(t, r.Set("audio-volume", "1", 0))
	assert.Equal(t, "55", dst.Value(), "duplicate must not alias the source's storage")
}
