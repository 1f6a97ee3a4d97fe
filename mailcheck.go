// Mailcheck is an offline email address syntax checker for Go.
//
// It decides whether a candidate string is plausibly a deliverable email
// address without any network access, by running three progressively
// stricter checks:
//
//  1. A quick guard: a cheap single-pass scan that rejects blank input,
//     embedded whitespace, and strings without the basic local@domain.tld
//     shape.
//  2. Structural validation: the RFC 5321/5322 grammar for unquoted
//     dot-atom local parts and LDH domain labels, including the 64-octet
//     local part, 63-octet label, and 254-octet total length ceilings.
//  3. TLD membership: the final domain label must appear in a registry of
//     known top-level domains.
//
// The first failing stage determines the returned Outcome.
//
// # Quick Start
//
// The package-level functions check against an embedded snapshot of the
// IANA root-zone TLD list:
//
//	switch mailcheck.Validate("user@example.com") {
//	case mailcheck.Valid:
//	    // deliverable shape, known TLD
//	case mailcheck.InvalidFormat:
//	    // failed the quick guard (blank, whitespace, missing @ or dot)
//	case mailcheck.RFCViolation:
//	    // failed RFC 5321/5322 structural rules
//	case mailcheck.InvalidTLD:
//	    // well-formed, but the domain suffix is not a known TLD
//	}
//
//	if mailcheck.IsValid("user@example.com") {
//	    // ...
//	}
//
// # Custom Registries
//
// Construct a Checker to control which TLD registry is consulted:
//
//	reg, err := tld.ParseList(listFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	checker := mailcheck.New(reg)
//	outcome := checker.Validate("user@example.com")
//
// The ICANN section of the Public Suffix List is available as an
// alternative registry:
//
//	checker := mailcheck.New(tld.ICANN{})
//
// # Batch Checking
//
// Check a list of addresses and serialize the results:
//
//	report := checker.CheckAll(addresses)
//	jsonData, err := report.ToJSON()
//	msgpackData, err := report.ToMessagePack()
//
// # Guarantees
//
// Validation is deterministic, pure, and total: identical input always
// yields identical output, no stage panics or returns an error, and a
// Checker may be shared by any number of goroutines without locking.
//
// # Non-goals
//
// Mailcheck performs no DNS lookups and no mailbox-existence probing. It
// accepts only the unquoted dot-atom local part form; quoted strings and
// comments (RFC 5322 Section 3.2.4) are rejected. Internationalized
// domains are not normalized: punycode "xn--" labels are treated as
// opaque strings and must appear verbatim in the registry.
//
// # RFC References
//
//   - RFC 5321: Simple Mail Transfer Protocol (path length limits,
//     domain syntax)
//   - RFC 5322: Internet Message Format (atext, dot-atom)
//   - RFC 1035: Domain Names (label length and LDH rule)
package mailcheck
