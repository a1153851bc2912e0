package opttype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"optcore/internal/option"
	"optcore/internal/opttype"
)

func TestGroupCarriesHasChildFlag(t *testing.T) {
	assert.True(t, opttype.Group{}.Flags().Has(option.FlagHasChild))
}

func TestAliasCarriesIsAliasFlag(t *testing.T) {
	assert.True(t, opttype.Alias{}.Flags().Has(option.FlagIsAlias))
}

func TestRemovedCarriesIsRemovedFlag(t *testing.T) {
	assert.True(t, opttype.Removed{}.Flags().Has(option.FlagIsRemoved))
}

func TestMarkerTypesAreInertStorageNoOps(t *testing.T) {
	var c option.Cell
	for _, typ := range []option.Type{opttype.Group{}, opttype.Alias{}, opttype.Removed{}} {
		assert.NoError(t, typ.Parse(&c, "anything", nil))
		assert.Equal(t, "", typ.Print(&c))
	}
}
