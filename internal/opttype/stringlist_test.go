package opttype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcore/internal/option"
	"optcore/internal/opttype"
)

func TestStringListParseAppendsAcrossCalls(t *testing.T) {
	var c option.Cell
	sl := opttype.StringList{}
	require.NoError(t, sl.Parse(&c, "a,b", nil))
	require.NoError(t, sl.Parse(&c, "c", nil))
	assert.Equal(t, "a,b,c", sl.Print(&c))
}

func TestStringListParseSkipsEmptyFields(t *testing.T) {
	var c option.Cell
	sl := opttype.StringList{}
	require.NoError(t, sl.Parse(&c, "a,,b,", nil))
	assert.Equal(t, "a,b", sl.Print(&c))
}

func TestStringListFreeEmptiesList(t *testing.T) {
	var c option.Cell
	sl := opttype.StringList{}
	require.NoError(t, sl.Parse(&c, "a,b", nil))
	sl.Free(&c)
	assert.Equal(t, "", sl.Print(&c))
}

func TestStringListCopyIsIndependentOfSource(t *testing.T) {
	var src, dst option.Cell
	sl := opttype.StringList{}
	require.NoError(t, sl.Parse(&src, "a,b", nil))
	sl.Copy(&dst, &src)
	require.NoError(t, sl.Parse(&dst, "c", nil))
	assert.Equal(t, "a,b", sl.Print(&src), "copy must not alias the source slice")
	assert.Equal(t, "a,b,c", sl.Print(&dst))
}
