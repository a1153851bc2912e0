package option

// includeFile resolves an `include` meta-option's filename parameter
// through the injected IncludeFunc, guarding recursion depth so a
// config file that includes itself fails instead of overflowing the
// stack (§4.7, I6). See internal/optfile for a reference IncludeFunc
// backed by BurntSushi/toml.
func (r *Root) includeFile(filename string, flags SetFlags) error {
	if r.includeFn == nil {
		return newErr(CodeInvalid, "include", nil)
	}
	r.includeDepth++
	defer func() { r.includeDepth-- }()
	if r.includeDepth > MaxRecursionDepth {
		r.logger.Warnf("include %q: recursion too deep", filename)
		return newErr(CodeInvalid, "include", nil)
	}
	return r.includeFn(r, filename, flags)
}
