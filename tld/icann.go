package tld

import "golang.org/x/net/publicsuffix"

// ICANN is a Registry backed by the ICANN section of the Public Suffix
// List compiled into golang.org/x/net/publicsuffix. It answers from
// the in-process table only; no network access is performed.
//
// Only the ICANN section is consulted. Privately delegated suffixes
// (the PSL "private domains" section, e.g. hosting providers) are not
// top-level domains and do not count.
type ICANN struct{}

// Contains reports whether label is a top-level domain in the ICANN
// section of the Public Suffix List. The label must be a single
// lowercase label; a label is a TLD exactly when the list maps it to
// itself.
func (ICANN) Contains(label string) bool {
	if label == "" {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(label)
	return icann && suffix == label
}
