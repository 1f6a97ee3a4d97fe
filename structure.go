package mailcheck

import "strings"

// Length ceilings from RFC 5321.
const (
	// maxAddressLen is the longest total address accepted. RFC 5321
	// Section 4.5.3.1.3 caps the forward-path at 256 octets including
	// the angle brackets, leaving 254 for the address itself.
	maxAddressLen = 254

	// maxLocalLen is the longest local part accepted (RFC 5321
	// Section 4.5.3.1.1).
	maxLocalLen = 64

	// maxDomainLen is the longest domain accepted (RFC 5321
	// Section 4.5.3.1.2, less the trailing root dot).
	maxDomainLen = 253

	// maxLabelLen is the longest single domain label accepted
	// (RFC 1035 Section 2.3.4).
	maxLabelLen = 63
)

// validStructure is the second-stage check: the RFC 5321/5322 grammar
// for an unquoted dot-atom local part and an LDH-labelled domain.
//
// It is a total predicate in its own right and does not assume the
// quick guard ran first; in particular it re-rejects multiple "@"s,
// since quoted local parts that could legitimize them are out of scope.
func validStructure(s string) bool {
	if len(s) > maxAddressLen {
		return false
	}

	// Split at the last "@" so that any earlier "@" is caught as a
	// local part character rather than silently shifting the domain.
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if strings.IndexByte(s, '@') != at {
		return false
	}

	return validLocalPart(s[:at]) && validDomain(s[at+1:])
}

// validLocalPart checks the dot-atom form of RFC 5322 Section 3.2.3:
// runs of atext separated by single dots, neither starting nor ending
// with a dot.
func validLocalPart(local string) bool {
	if len(local) == 0 || len(local) > maxLocalLen {
		return false
	}
	if local[0] == '.' || local[len(local)-1] == '.' {
		return false
	}
	for i := 0; i < len(local); i++ {
		c := local[i]
		if c == '.' {
			if local[i-1] == '.' {
				return false
			}
			continue
		}
		if !isAtext(c) {
			return false
		}
	}
	return true
}

// validDomain checks that the domain is at least two dot-separated LDH
// labels. A bare hostname such as "localhost" is rejected: a mail
// domain with no public suffix cannot be deliverable from outside.
func validDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > maxDomainLen {
		return false
	}
	if domain[0] == '.' || domain[len(domain)-1] == '.' {
		return false
	}

	labels := 0
	for _, label := range strings.Split(domain, ".") {
		if !validLabel(label) {
			return false
		}
		labels++
	}
	return labels >= 2
}

// validLabel checks one domain label against the LDH rule of RFC 1035
// Section 2.3.1: letters, digits, and interior hyphens only.
func validLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabelLen {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isAlnum(c) && c != '-' {
			return false
		}
	}
	return true
}

// isAtext reports whether c is in the RFC 5322 Section 3.2.3 atext
// class: ASCII letters, digits, and the printable specials permitted in
// an unquoted local part.
func isAtext(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
		'=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
