package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSubOptionsBareNameMeansYes(t *testing.T) {
	pairs := splitSubOptions("fs")
	assert.Equal(t, []NamedValue{{Name: "fs", Value: "yes"}}, pairs)
}

func TestSplitSubOptionsMultiplePairs(t *testing.T) {
	pairs := splitSubOptions("a=x,b=y,c")
	assert.Equal(t, []NamedValue{
		{Name: "a", Value: "x"},
		{Name: "b", Value: "y"},
		{Name: "c", Value: "yes"},
	}, pairs)
}

func TestSplitSubOptionsQuotedValueHidesComma(t *testing.T) {
	pairs := splitSubOptions(`file="a,b.mkv",lang=eng`)
	assert.Equal(t, []NamedValue{
		{Name: "file", Value: "a,b.mkv"},
		{Name: "lang", Value: "eng"},
	}, pairs)
}

func TestSplitSubOptionsEmptyStringYieldsNoPairs(t *testing.T) {
	assert.Empty(t, splitSubOptions(""))
}

func TestSetSubOptionsFlattensToPrefixedChildren(t *testing.T) {
	defs := []Def{
		{
			Name: "audio",
			Type: groupStub{},
			Children: &SubOptions{
				Definitions: []Def{
					{Name: "device", Type: stubType{}, Default: ""},
					{Name: "channels", Type: stubType{}, Default: ""},
				},
			},
		},
	}
	r, err := New(defs)
	if err != nil {
		t.Fatal(err)
	}

	err = r.Set("audio", "device=hdmi,channels=stereo", 0)
	if err != nil {
		t.Fatal(err)
	}

	dev, err := r.GetEntry("audio-device")
	if err != nil {
		t.Fatal(err)
	}
	ch, err := r.GetEntry("audio-channels")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "hdmi", dev.Value())
	assert.Equal(t, "stereo", ch.Value())
	assert.True(t, r.subOptDeprecationWarned["audio"])
}

type groupStub struct{}

func (groupStub) Name() string       { return "Group" }
func (groupStub) Size() int          { return 0 }
func (groupStub) Flags() Flag        { return FlagHasChild }
func (groupStub) Parse(*Cell, string, any) error         { return nil }
func (groupStub) ParseNode(*Cell, *Node, any) error       { return nil }
func (groupStub) Copy(*Cell, *Cell)                       {}
func (groupStub) Free(*Cell)                              {}
func (groupStub) Print(*Cell) string                      { return "" }
func (groupStub) RequiredParams() int                     { return 1 }
