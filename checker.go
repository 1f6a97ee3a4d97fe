package mailcheck

import (
	"strings"

	"github.com/synqronlabs/mailcheck/tld"
)

// Checker runs the three-stage validation pipeline against a fixed TLD
// registry. The registry is injected at construction and never mutated,
// so a single Checker is safe for concurrent use by any number of
// goroutines.
type Checker struct {
	tlds tld.Registry
}

// New returns a Checker that consults reg for the final TLD membership
// stage. The registry must be safe for concurrent reads; every Registry
// in the tld package is.
func New(reg tld.Registry) *Checker {
	return &Checker{tlds: reg}
}

// Validate runs addr through the pipeline and reports the outcome of
// the first stage that rejects it. An empty string is the absent-input
// case and yields InvalidFormat.
func (c *Checker) Validate(addr string) Outcome {
	if !quickGuard(addr) {
		return InvalidFormat
	}
	if !validStructure(addr) {
		return RFCViolation
	}
	// The structural stage guarantees at least two labels, so the
	// domain here always contains a dot.
	domain := addr[strings.LastIndexByte(addr, '@')+1:]
	if !c.IsKnownTLD(domain) {
		return InvalidTLD
	}
	return Valid
}

// IsValid reports whether Validate(addr) == Valid.
func (c *Checker) IsValid(addr string) bool {
	return c.Validate(addr) == Valid
}

// IsKnownTLD reports whether the final label of domain is a registered
// top-level domain. The label is ASCII-lowercased before the lookup;
// no other normalization is applied, so punycode "xn--" suffixes must
// appear verbatim in the registry. Callers holding a bare domain (no
// local part) may use this directly.
func (c *Checker) IsKnownTLD(domain string) bool {
	suffix := domain[strings.LastIndexByte(domain, '.')+1:]
	return c.tlds.Contains(strings.ToLower(suffix))
}

// defaultChecker validates against the embedded IANA root-zone
// snapshot. Built lazily on first use; see tld.Default.
func defaultChecker() *Checker {
	return &Checker{tlds: tld.Default()}
}

// Validate runs addr through the pipeline against the embedded IANA
// TLD snapshot. See Checker.Validate.
func Validate(addr string) Outcome {
	return defaultChecker().Validate(addr)
}

// IsValid reports whether Validate(addr) == Valid.
func IsValid(addr string) bool {
	return Validate(addr) == Valid
}

// IsKnownTLD reports whether the final label of domain is in the
// embedded IANA TLD snapshot. See Checker.IsKnownTLD.
func IsKnownTLD(domain string) bool {
	return defaultChecker().IsKnownTLD(domain)
}
