// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"testing"

	"desklog/internal/textscope"
)

func TestStaffName_FromAnalyticsPayload(t *testing.T) {
	root := &textscope.Node{Tag: "body", Children: []*textscope.Node{
		{Tag: "script", Text: `telemetry.page({"path": "/desk"})`},
		{Tag: "script", Text: `telemetry.identify("u-17", {"full_name": "Sam Porter", "role": "desk"})`},
	}}
	name, _, ok := StaffNameChain().Extract(textscope.NewScope(root))
	if !ok || name != "Sam Porter" {
		t.Errorf("Extract = (%q, %v), want Sam Porter", name, ok)
	}
}

func TestStaffName_AbsenceIsNotFatal(t *testing.T) {
	root := &textscope.Node{Tag: "body", Children: []*textscope.Node{
		{Tag: "script", Text: `telemetry.page({"path": "/desk"})`},
	}}
	if _, _, ok := StaffNameChain().Extract(textscope.NewScope(root)); ok {
		t.Error("expected no result without a full_name payload")
	}
}
