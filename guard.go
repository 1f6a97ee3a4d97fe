package mailcheck

// quickGuard is the first-stage pre-filter. It accepts a candidate only
// if the whole string matches local "@" rest "." suffix, where local,
// rest, and suffix are each one or more characters containing neither
// whitespace nor "@".
//
// This is a necessary-but-not-sufficient check: it guarantees exactly
// one "@", at least one dot after it with a character on each side, and
// no whitespace anywhere. It says nothing about dot placement or
// character classes; that is the structural stage's job. The pattern is
// simple enough that an explicit scan beats compiling a regexp.
func quickGuard(s string) bool {
	if s == "" {
		return false
	}

	at := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			return false
		}
		if c == '@' {
			if at != -1 {
				// Second "@"; the guard admits exactly one.
				return false
			}
			at = i
		}
	}

	if at <= 0 || at == len(s)-1 {
		return false
	}

	// The region after the "@" must contain a dot with at least one
	// character between it and the "@" and at least one after it.
	for i := at + 2; i < len(s)-1; i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

// isSpace reports whether c is ASCII whitespace. Control whitespace
// (CR, LF, tab, vertical tab, form feed) counts the same as a space.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
