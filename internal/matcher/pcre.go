package matcher

import "go.elara.ws/pcre"

// compilePCRE builds a PCRE2-compatible engine via the pure Go pcre package.
// Supports lookahead, lookbehind, backreferences and atomic groups.
// The returned closer releases the compiled regex.
func compilePCRE(pattern string, ignoreCase bool) (engine, func(), error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, nil, err
	}
	return re, func() { re.Close() }, nil
}
