// SPDX-License-Identifier: Apache-2.0

// Package scope decides which region of the rendered tree extraction should
// run against, and whether that region is a single profile or a
// multi-record report.
package scope

import (
	"regexp"
	"strings"

	"desklog/internal/config"
	"desklog/internal/observability"
	"desklog/internal/patterns"
	"desklog/internal/textscope"
)

// identifierHeader is the column header that, paired with a name header,
// signals a listing of more than one resident.
const identifierHeader = "Student Number"

// Resolver picks the active extraction scope and classifies it.
type Resolver struct {
	activeClasses  []string
	reportTitles   []string
	nameHeaders    []string
	matchThreshold int
	keyRegex       *regexp.Regexp

	observer *observability.StandardObserver
}

// NewResolver builds a resolver from engine configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		activeClasses:  cfg.Navigation.ActivePanelClasses,
		reportTitles:   cfg.Report.Titles,
		nameHeaders:    cfg.Report.NameHeaders,
		matchThreshold: cfg.Report.MatchThreshold,
		keyRegex:       patterns.KeyAssignment(cfg.Keys.Labels),
	}
}

// SetObserver sets the observability component
func (r *Resolver) SetObserver(observer *observability.StandardObserver) {
	r.observer = observer
}

// ResolveActive returns the scope extraction should run against: the
// explicitly marked active tab panel if one is visible, otherwise any
// visible generic tab panel, otherwise the whole document. The broadest
// scope is a last resort, since background panels can carry another
// resident's data.
func (r *Resolver) ResolveActive(root *textscope.Node) *textscope.Scope {
	if active := root.FindVisible(r.isActivePanel); active != nil {
		r.logResolution("active_panel")
		return textscope.NewScope(active)
	}
	if panel := root.FindVisible(func(n *textscope.Node) bool {
		return n.Attr("role") == "tabpanel"
	}); panel != nil {
		r.logResolution("visible_tabpanel")
		return textscope.NewScope(panel)
	}
	r.logResolution("document")
	return textscope.NewScope(root)
}

func (r *Resolver) isActivePanel(n *textscope.Node) bool {
	for _, class := range r.activeClasses {
		if n.HasClass(class) {
			return true
		}
	}
	return false
}

// IsReportMode reports whether the scope shows more than one resident at
// once. Three independent signals are OR-combined: an explicit report
// title, the identifier and name column headers appearing together, and a
// raw count of key-assignment matches above the threshold. Any one signal
// is enough; a misclassification in either direction is user-visible
// (another resident's key in the log, or valid keys rejected), and leaning
// on a single regex has historically broken on layout drift.
func (r *Resolver) IsReportMode(s *textscope.Scope) bool {
	text := s.Text()

	title := r.hasReportTitle(text)
	headers := r.hasPairedHeaders(text)
	count := len(r.keyRegex.FindAllStringIndex(text, -1))
	overThreshold := count > r.matchThreshold

	if r.observer != nil && r.observer.DebugObserver != nil {
		r.observer.DebugObserver.LogDetail("scope_resolver",
			"report signals: title="+boolStr(title)+" headers="+boolStr(headers)+" over_threshold="+boolStr(overThreshold))
	}

	return title || headers || overThreshold
}

func (r *Resolver) hasReportTitle(text string) bool {
	for _, title := range r.reportTitles {
		if strings.Contains(text, title) {
			return true
		}
	}
	return false
}

func (r *Resolver) hasPairedHeaders(text string) bool {
	if !strings.Contains(text, identifierHeader) {
		return false
	}
	for _, header := range r.nameHeaders {
		if strings.Contains(text, header) {
			return true
		}
	}
	return false
}

func (r *Resolver) logResolution(strategy string) {
	if r.observer != nil && r.observer.DebugObserver != nil {
		r.observer.DebugObserver.LogDetail("scope_resolver", "resolved via "+strategy)
	}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
