// SPDX-License-Identifier: Apache-2.0

// Package record defines the structured records the engine recovers from
// rendered page text, plus the shape validation that gates them.
package record

import (
	"errors"
	"sort"
	"strings"
)

// Failure reasons surfaced to callers. None of these is fatal to the host:
// every one degrades to "no result, try again" at the integration layer.
var (
	// ErrRecordNotFound covers both a missing resident name and a candidate
	// that failed shape validation; the user-facing message for both is the
	// same "wait for the profile to load".
	ErrRecordNotFound = errors.New("resident record not found")

	ErrIdentifierNotFound = errors.New("identifier not found")

	ErrRoomCodeNotFound = errors.New("room code not found")

	// ErrNoKeysFound is frequently the correct outcome, not a defect: a
	// resident in a report may simply hold no keys.
	ErrNoKeysFound = errors.New("no keys found for this resident")
)

// StaffIdentity is the logged-in staff member, read from the embedded
// analytics payload. Absence is non-fatal; formatting substitutes a
// placeholder.
type StaffIdentity struct {
	FullName string
}

// ResidentRecord is a validated resident extraction. FullName is in
// "Last, First" form as the host renders it.
type ResidentRecord struct {
	FullName   string
	Identifier string
	RoomCode   string
}

// KeyCodeSet is a deduplicated set of physical/loaner key codes. Never
// cached: loaner assignments change within a session, so the set must
// always reflect the current screen.
type KeyCodeSet map[string]struct{}

// Add inserts a code into the set.
func (s KeyCodeSet) Add(code string) {
	s[code] = struct{}{}
}

// Has reports whether the set contains the code.
func (s KeyCodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Values returns the codes in sorted order for stable formatting.
func (s KeyCodeSet) Values() []string {
	out := make([]string, 0, len(s))
	for code := range s {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Signature derives the profile-identity signature from a resident display
// name: lowercased with whitespace collapsed. The cache compares it against
// a freshly recomputed value on every call, so the signature only needs to
// be stable, not secret.
func Signature(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
