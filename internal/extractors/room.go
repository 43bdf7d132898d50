// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"strings"

	"desklog/internal/patterns"
	"desklog/internal/textscope"
)

// rez360Label marks the profile subsection that repeats the resident's
// current assignment.
const rez360Label = "Rez 360"

// RoomCodeChain extracts the resident's bedspace code. Four methods, most
// specific first; each is attempted only when the previous produced
// nothing:
//
//  1. the "Room" label's parent/bedspace slash pair, taking the second
//     token — the specific bedspace, not the parent room;
//  2. the first canonical match inside the "Rez 360" subsection;
//  3. the "Room Space" label some layouts use instead;
//  4. a scan of the entire scope, taking the last canonical match — later
//     occurrences tend to be the current assignment, while early ones are
//     sidebar or summary mentions.
func RoomCodeChain() *Chain {
	return NewChain("room_code",
		Strategy{Name: "room_slash_pair", Fn: roomFromSlashPair},
		Strategy{Name: "rez360_section", Fn: roomFromRez360},
		Strategy{Name: "room_space_label", Fn: roomFromSpaceLabel},
		Strategy{Name: "last_match", Fn: roomFromLastMatch},
	)
}

func roomFromSlashPair(s *textscope.Scope) (string, bool) {
	if m := patterns.RoomSlashPair.FindStringSubmatch(s.Text()); m != nil {
		return m[1], true
	}
	return "", false
}

func roomFromRez360(s *textscope.Scope) (string, bool) {
	text := s.Text()
	idx := strings.Index(text, rez360Label)
	if idx < 0 {
		return "", false
	}
	if m := patterns.RoomCode.FindString(text[idx:]); m != "" {
		return m, true
	}
	return "", false
}

func roomFromSpaceLabel(s *textscope.Scope) (string, bool) {
	if m := patterns.RoomSpace.FindStringSubmatch(s.Text()); m != nil {
		return m[1], true
	}
	return "", false
}

func roomFromLastMatch(s *textscope.Scope) (string, bool) {
	all := patterns.RoomCode.FindAllString(s.Text(), -1)
	if len(all) == 0 {
		return "", false
	}
	return all[len(all)-1], true
}
