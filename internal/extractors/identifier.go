// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"desklog/internal/patterns"
	"desklog/internal/textscope"
)

// IdentifierChain extracts the resident's 8-digit identifier from the
// labeled "Student Number" field in the active scope.
func IdentifierChain() *Chain {
	return NewChain("identifier", Strategy{
		Name: "student_number_label",
		Fn:   identifierFromLabel,
	})
}

func identifierFromLabel(s *textscope.Scope) (string, bool) {
	if m := patterns.StudentNumber.FindStringSubmatch(s.Text()); m != nil {
		return m[1], true
	}
	return "", false
}
