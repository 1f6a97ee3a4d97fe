package tld

import (
	"bytes"
	_ "embed"
	"sync"
)

// ianaList is a snapshot of the IANA "TLDS-ALPHA-BY-DOMAIN" root-zone
// list. Refresh it from https://data.iana.org/TLD/tlds-alpha-by-domain.txt
// when cutting a release.
//
//go:embed tlds-alpha-by-domain.txt
var ianaList []byte

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the Set built from the embedded IANA snapshot. The
// set is built once and shared; it is never mutated afterwards.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := ParseList(bytes.NewReader(ianaList))
		if err != nil {
			// Unreachable: bytes.Reader cannot fail and the
			// snapshot is validated by the package tests.
			panic(err)
		}
		defaultSet = s
	})
	return defaultSet
}
