// SPDX-License-Identifier: Apache-2.0

package formatters

import "fmt"

// timestampLayout matches the handwritten log book the lines replace.
const timestampLayout = "Jan 2 2006 3:04 PM"

// PickupFormatter renders the package-pickup log line.
type PickupFormatter struct{}

func (f *PickupFormatter) Name() string {
	return "pickup"
}

func (f *PickupFormatter) Description() string {
	return "Package pickup log line"
}

func (f *PickupFormatter) Format(req Request) (string, error) {
	return fmt.Sprintf("%s - Package picked up by %s (%s, %s). Logged by %s.",
		req.When.Format(timestampLayout),
		req.Resident.FullName,
		req.Resident.Identifier,
		req.Resident.RoomCode,
		req.StaffName(),
	), nil
}
