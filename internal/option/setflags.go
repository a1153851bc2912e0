package option

// SetFlags is the flag mask passed to Set/SetNode/SetRaw (§4.3.1). Bits
// combine freely.
type SetFlags uint32

const (
	SetCheckOnly SetFlags = 1 << iota
	SetPreParseOnly
	SetPreserveCmdline
	SetNoFixed
	SetNoPreParse
	SetFromConfigFile
	SetBackup
	SetFromCmdline
)

func (f SetFlags) has(bit SetFlags) bool { return f&bit != 0 }

// gateOutcome is the decision the flag-gating step reaches before the
// setter pipeline dispatches to a type handler (§4.3.1).
type gateOutcome int

const (
	gateCommit gateOutcome = iota
	gateCheckOnly
	gateSkip
	gateReject
)

// gate applies the ordered decision table from §4.3.1. entry is the
// resolved option; flags is the caller-supplied mask.
func (r *Root) gate(entry *Entry, flags SetFlags) (gateOutcome, error) {
	def := entry.Def

	if flags.has(SetPreParseOnly) && !def.Flags.Has(FlagPreParse) {
		return gateSkip, nil
	}
	if flags.has(SetPreserveCmdline) && entry.isSetFromCmdline {
		return gateCheckOnly, nil
	}
	if flags.has(SetNoFixed) && def.Flags.Has(FlagFixed) {
		return gateReject, newErr(CodeInvalid, entry.Name, nil)
	}
	if flags.has(SetNoPreParse) && def.Flags.Has(FlagPreParse) {
		return gateReject, newErr(CodeInvalid, entry.Name, nil)
	}
	if flags.has(SetFromConfigFile) && def.Flags.Has(FlagNotInConfig) {
		return gateReject, newErr(CodeInvalid, entry.Name, nil)
	}
	if flags.has(SetBackup) && def.Flags.Has(FlagGlobalOnly) {
		return gateReject, newErr(CodeInvalid, entry.Name, nil)
	}
	if flags.has(SetCheckOnly) {
		return gateCheckOnly, nil
	}
	return gateCommit, nil
}
