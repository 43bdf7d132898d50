// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"
)

// LockoutFormatter renders the lockout key-issuance log line.
type LockoutFormatter struct{}

func (f *LockoutFormatter) Name() string {
	return "lockout"
}

func (f *LockoutFormatter) Description() string {
	return "Lockout key issuance log line"
}

func (f *LockoutFormatter) Format(req Request) (string, error) {
	keys := "none on file"
	if len(req.Keys) > 0 {
		keys = strings.Join(req.Keys.Values(), ", ")
	}
	return fmt.Sprintf("%s - Lockout key issued to %s (%s, %s). Keys: %s. Logged by %s.",
		req.When.Format(timestampLayout),
		req.Resident.FullName,
		req.Resident.Identifier,
		req.Resident.RoomCode,
		keys,
		req.StaffName(),
	), nil
}
