// Package demo is a worked option schema — a trimmed audio/video/
// subtitle tree in the shape of a media player's option table —
// exercised by internal/option's tests and by cmd/optctl.
package demo

import (
	"optcore/internal/option"
	"optcore/internal/opttype"
)

func ptr(v int64) *int64 { return &v }

// Schema returns the static option-definition tree. Names and nesting
// mirror the kind of table original_source/options/m_config.c walks:
// a flat top-level plus three has-child sub-groups. Child Definitions
// carry bare local names ("device", not "audio-device") — buildSchema
// prepends the parent's name itself, so a child's own Name must not
// repeat it.
func Schema() []option.Def {
	return []option.Def{
		{
			Name:    "mute",
			Type:    opttype.Flag{},
			Default: false,
		},
		{
			Name:    "volume",
			Type:    opttype.Int{Min: ptr(0), Max: ptr(100)},
			Default: int64(100),
		},
		{
			Name: "osd-level",
			Type: opttype.Removed{},
			Priv: "use --osd instead",
		},
		{
			Name:    "osd",
			Type:    opttype.Choice{Values: []string{"no", "auto", "yes"}},
			Default: "auto",
		},
		{
			Name:       "sub-visibility",
			Type:       opttype.Alias{},
			Priv:       "sub-auto",
			Deprecated: "renamed to --sub-auto",
		},
		{
			Name:  "really-quiet",
			Type:  opttype.Flag{},
			Flags: option.FlagFixed,
		},
		{
			Name:  "pid-file",
			Type:  opttype.String{},
			Flags: option.FlagGlobalOnly,
		},
		{
			Name: "audio",
			Type: opttype.Group{},
			Children: &option.SubOptions{
				Definitions: []option.Def{
					{Name: "device", Type: opttype.String{}, Default: ""},
					{
						Name:    "channels",
						Type:    opttype.Choice{Values: []string{"auto", "stereo", "mono"}},
						Default: "auto",
					},
					{
						Name:    "volume-max",
						Type:    opttype.Int{Max: ptr(200)},
						Default: int64(130),
					},
				},
			},
		},
		{
			Name: "video",
			Type: opttype.Group{},
			Children: &option.SubOptions{
				Definitions: []option.Def{
					{
						Name:  "fullscreen",
						Type:  opttype.Flag{},
						Flags: option.FlagTerminalAffecting,
					},
					{Name: "vo", Type: opttype.String{}, Default: "auto"},
					{Name: "rotate*", Type: opttype.WildcardString{}, Default: ""},
				},
			},
		},
		{
			Name: "sub",
			Type: opttype.Group{},
			Children: &option.SubOptions{
				Definitions: []option.Def{
					{Name: "file", Type: opttype.StringList{}},
					{
						Name:    "auto",
						Type:    opttype.Choice{Values: []string{"no", "exact", "fuzzy", "all"}},
						Default: "exact",
					},
				},
			},
		},
	}
}

// NewRoot builds a fresh Root from Schema, the convenience entry point
// tests and cmd/optctl both use.
func NewRoot() (*option.Root, error) {
	return option.New(Schema())
}
