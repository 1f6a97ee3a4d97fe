package mailcheck

// Outcome is the result of running an address through the validation
// pipeline. Exactly one of the four values is returned per call; the
// first failing stage determines which.
type Outcome string

const (
	// Valid indicates the address passed all three stages.
	Valid Outcome = "valid"

	// InvalidFormat indicates the address failed the quick guard:
	// absent or blank input, embedded whitespace, a missing or
	// duplicated "@", or no dot in the domain region.
	InvalidFormat Outcome = "invalid_format"

	// RFCViolation indicates the address passed the quick guard but
	// failed the RFC 5321/5322 structural rules: bad dot placement,
	// characters outside the atext class, label or length violations.
	RFCViolation Outcome = "rfc_violation"

	// InvalidTLD indicates the address is structurally sound but its
	// final domain label is not in the TLD registry.
	InvalidTLD Outcome = "invalid_tld"
)

// String returns the outcome's wire form, e.g. "invalid_format".
func (o Outcome) String() string {
	return string(o)
}
