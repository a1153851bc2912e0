package opttype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcore/internal/option"
	"optcore/internal/opttype"
)

func TestChoiceParseIsCaseInsensitive(t *testing.T) {
	var c option.Cell
	ch := opttype.Choice{Values: []string{"auto", "yes", "no"}}
	require.NoError(t, ch.Parse(&c, "AUTO", nil))
	assert.Equal(t, "auto", ch.Print(&c))
}

func TestChoiceParseRejectsUnlistedValue(t *testing.T) {
	var c option.Cell
	ch := opttype.Choice{Values: []string{"auto", "yes", "no"}}
	assert.Error(t, ch.Parse(&c, "maybe", nil))
}

func TestChoiceIsNegatable(t *testing.T) {
	assert.True(t, opttype.Choice{}.Flags().Has(option.FlagNegatable))
}
