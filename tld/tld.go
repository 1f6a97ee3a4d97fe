package tld

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Registry answers membership queries for top-level domain labels.
// Contains expects a lowercase label without dots, e.g. "com" or
// "xn--p1ai". Implementations must be safe for concurrent readers.
type Registry interface {
	Contains(label string) bool
}

// Set is an immutable hash-set registry. The zero value is an empty
// set; build one with New or ParseList.
type Set struct {
	labels map[string]struct{}
}

// New builds a Set from the given labels, lowercasing each. Duplicates
// are collapsed.
func New(labels ...string) *Set {
	m := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		m[strings.ToLower(l)] = struct{}{}
	}
	return &Set{labels: m}
}

// Contains reports whether label is in the set. The label must already
// be lowercase; Set does no folding on lookup, keeping the hot path
// allocation-free.
func (s *Set) Contains(label string) bool {
	_, ok := s.labels[label]
	return ok
}

// Len returns the number of labels in the set.
func (s *Set) Len() int {
	return len(s.labels)
}

// ParseList reads a TLD list in the IANA root-zone file format: one
// label per line, "#" lines are comments, blank lines are ignored.
// Labels are lowercased (the IANA file publishes them uppercase) and
// punycode "xn--" entries are kept verbatim.
func ParseList(r io.Reader) (*Set, error) {
	m := make(map[string]struct{}, 1536)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading TLD list: %w", err)
	}
	return &Set{labels: m}, nil
}
