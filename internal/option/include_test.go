package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeDepthGuardStopsRecursion(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	var calls int
	r.SetIncludeCallback(func(root *Root, filename string, flags SetFlags) error {
		calls++
		return root.Set("include", filename, flags)
	})

	err = r.Set("include", "self.toml", 0)
	var oerr *Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, CodeInvalid, oerr.Code)
	assert.LessOrEqual(t, calls, MaxRecursionDepth+1)
	assert.Zero(t, r.includeDepth, "depth counter must unwind back to zero")
}
