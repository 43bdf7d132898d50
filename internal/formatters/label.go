// SPDX-License-Identifier: Apache-2.0

package formatters

import "fmt"

// LabelFormatter renders the multi-line package label block.
type LabelFormatter struct{}

func (f *LabelFormatter) Name() string {
	return "label"
}

func (f *LabelFormatter) Description() string {
	return "Package label block"
}

func (f *LabelFormatter) Format(req Request) (string, error) {
	return fmt.Sprintf("%s\n%s\n%s",
		req.Resident.FullName,
		req.Resident.RoomCode,
		req.Resident.Identifier,
	), nil
}
