// Package tld provides top-level domain registries for the mailcheck
// pipeline's final validation stage.
//
// A registry is an immutable set of lowercase suffix labels queried
// through the Registry interface. Two implementations are provided:
//
//   - Set: a hash set built from an explicit label list or from the
//     IANA root-zone file format. Default returns a Set over the
//     embedded snapshot of the IANA "TLDS-ALPHA-BY-DOMAIN" list.
//   - ICANN: backed by the ICANN section of the Public Suffix List
//     compiled into golang.org/x/net/publicsuffix.
//
// Internationalized suffixes appear in punycode ("xn--") form and are
// matched verbatim; no IDNA mapping is performed.
//
// All registries are safe for concurrent readers and are never mutated
// after construction.
package tld
