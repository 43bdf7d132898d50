// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the compiled text patterns the extraction engine
// recognizes. The host pages render everything as flat text, so these
// patterns are the whole contract with the source layout; edge cases are
// documented on each pattern rather than scattered through the extractors.
package patterns

import (
	"regexp"
	"strings"
)

// roomCode is the canonical bedspace code shape: an uppercase alphanumeric
// building token (digits are legal inside it: V1, E4), an optional N/S wing
// suffix, at most one extra hyphen-joined segment, then a hyphen, the room
// number, and a single lowercase bedspace letter.
//
// Matches: UWP-BECK-204a, V1-W2-311a, CLVN-349b, REV-E4-455a
// Rejects: UWP-BECK-204 (no bedspace letter), 20990921 (identifier)
const roomCode = `[A-Z0-9]+[NS]?(?:-[A-Z0-9]+)?-\d+[a-z]\b`

// RoomCode matches a canonical bedspace code anywhere in flat text.
var RoomCode = regexp.MustCompile(`\b` + roomCode)

// RoomCodeExact is the full-string shape check for an already-extracted
// room code.
var RoomCodeExact = regexp.MustCompile(`^` + roomCode + `$`)

// Identifier is the full-string shape check for a resident identifier.
var Identifier = regexp.MustCompile(`^\d{8}$`)

// IdentifierRun matches an identifier-shaped 8-digit run anywhere in flat
// text. The boundaries keep it off 7- and 9-digit runs and off digits
// embedded in alphanumeric codes.
var IdentifierRun = regexp.MustCompile(`\b\d{8}\b`)

// StudentNumber matches the labeled identifier. The label anchor matters:
// without it an 8-digit window could slide inside a 9-digit run, but \s+
// cannot consume a leading digit, so 7- and 9-digit runs never match.
var StudentNumber = regexp.MustCompile(`Student Number\s*:?\s+(\d{8})\b`)

// RoomSlashPair matches the "Room" label followed by the parent-room /
// bedspace pair. The first token is the parent room (no bedspace letter);
// the capture is the second, specific token.
var RoomSlashPair = regexp.MustCompile(`Room\s*:?\s+[A-Z0-9][A-Z0-9-]*\s*/\s*(` + roomCode + `)`)

// RoomSpace matches the alternate "Room Space" labeling some profile
// layouts use.
var RoomSpace = regexp.MustCompile(`Room Space\s*:?\s+(` + roomCode + `)`)

// StaffFullName matches the full_name entry of the embedded analytics
// initialization payload. Both quote styles appear across host versions.
var StaffFullName = regexp.MustCompile(`['"]?full_name['"]?\s*[:=]\s*['"]([^'"]+)['"]`)

// KeyAssignment builds the key-assignment matcher for a label vocabulary:
// label, optional trailing "Key", colon, then the code token. The token
// class deliberately admits lowercase, "@" and dots so that username/email
// false positives are captured here and rejected by the token filter, where
// the decision is visible, instead of silently skipped by the regex.
func KeyAssignment(labels []string) *regexp.Regexp {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)(?:\s+Key)?\s*:\s*([A-Za-z0-9@._-]+)`)
}

// HasLower reports whether the token contains any lowercase letter. Key
// codes are uppercase by convention of the host system; lowercase indicates
// a username or email bleeding into the match window.
func HasLower(token string) bool {
	return strings.IndexFunc(token, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	}) >= 0
}
