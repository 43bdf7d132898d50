// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"desklog/internal/patterns"
	"desklog/internal/textscope"
)

// StaffNameChain extracts the logged-in staff member's name. The only
// reliable source is the embedded analytics initialization payload, which
// carries a full_name entry; page body text never names the operator.
func StaffNameChain() *Chain {
	return NewChain("staff_name", Strategy{
		Name: "analytics_payload",
		Fn:   staffFromScripts,
	})
}

// staffFromScripts scans every script payload in the scope for the
// initialization call and returns the first quoted full_name value. Script
// text is never rendered, so the visibility rules of the rest of the
// engine do not apply here.
func staffFromScripts(s *textscope.Scope) (string, bool) {
	if s.Root == nil {
		return "", false
	}
	for _, payload := range s.Root.ScriptPayloads() {
		if m := patterns.StaffFullName.FindStringSubmatch(payload); m != nil {
			return m[1], true
		}
	}
	return "", false
}
