// SPDX-License-Identifier: Apache-2.0

package record

import (
	"strings"

	"desklog/internal/patterns"
)

// Validate applies the structural invariants to a candidate record: name
// present in "Last, First" form, identifier exactly 8 digits, room code in
// canonical bedspace form. A partial or cross-contaminated extraction must
// never reach formatting, so all checks are required.
//
// The returned error is the failure reason for the first check that failed,
// matching the order in which the extractors produce the fields.
func Validate(c ResidentRecord) error {
	if c.FullName == "" || !strings.Contains(c.FullName, ",") {
		return ErrRecordNotFound
	}
	if !patterns.Identifier.MatchString(c.Identifier) {
		return ErrIdentifierNotFound
	}
	if !patterns.RoomCodeExact.MatchString(c.RoomCode) {
		return ErrRoomCodeNotFound
	}
	return nil
}
