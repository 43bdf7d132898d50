// SPDX-License-Identifier: Apache-2.0

// Package engine wires the resolver, extractor chains, validator, cache and
// key-code filter into the extraction calls the host-integration layer
// invokes. Every call is a bounded synchronous scan over the snapshot tree
// it is given: no I/O, no mutation of the tree, safe to re-invoke on every
// page change the host detects.
package engine

import (
	"desklog/internal/cache"
	"desklog/internal/config"
	"desklog/internal/extractors"
	"desklog/internal/keycodes"
	"desklog/internal/observability"
	"desklog/internal/record"
	"desklog/internal/scope"
	"desklog/internal/textscope"
)

// Engine is the record-extraction engine. It owns the extraction cache and
// nothing else; scopes are supplied per call and never retained.
type Engine struct {
	cfg      *config.Config
	resolver *scope.Resolver
	cache    *cache.Cache
	keys     *keycodes.Filter

	staff      *extractors.Chain
	resident   *extractors.Chain
	identifier *extractors.Chain
	room       *extractors.Chain

	observer *observability.StandardObserver
}

// New builds an engine from configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:        cfg,
		resolver:   scope.NewResolver(cfg),
		cache:      cache.New(cfg.CacheTTL(), cfg.Cache.MaxValidationFailures),
		keys:       keycodes.NewFilter(cfg.Keys.Labels, cfg.Keys.ProximityWindow, cfg.Keys.MinTokenLength),
		staff:      extractors.StaffNameChain(),
		resident:   extractors.ResidentNameChain(cfg.Navigation.ChromeWords),
		identifier: extractors.IdentifierChain(),
		room:       extractors.RoomCodeChain(),
	}
}

// SetObserver sets the observability component on the engine and every part
// it owns.
func (e *Engine) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
	e.resolver.SetObserver(observer)
	e.keys.SetObserver(observer)
	e.staff.SetObserver(observer)
	e.resident.SetObserver(observer)
	e.identifier.SetObserver(observer)
	e.room.SetObserver(observer)
}

// Cache exposes the extraction cache for explicit invalidation when the
// host's navigation observer reports a profile change.
func (e *Engine) Cache() *cache.Cache {
	return e.cache
}

// ExtractResident recovers and validates the resident record for the
// currently active profile.
//
// The resident name is extracted from the full document (breadcrumbs live
// outside tab panels) on every call, and its signature decides whether the
// cached record is still current — the cache is consulted with a fresh
// signature, never trusted on its own. Identifier and room run against the
// active scope only, so a background report listing cannot contaminate a
// profile extraction.
func (e *Engine) ExtractResident(root *textscope.Node) (*record.ResidentRecord, error) {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("engine", "extract_resident", "")
	}

	docScope := textscope.NewScope(root)
	name, _, ok := e.resident.Extract(docScope)
	if !ok {
		e.cache.RecordFailure()
		return e.fail(finishTiming, record.ErrRecordNotFound)
	}

	signature := record.Signature(name)
	if rec, hit := e.cache.Get(signature); hit {
		if finishTiming != nil {
			finishTiming(true, map[string]interface{}{"cache_hit": true})
		}
		return rec, nil
	}

	active := e.resolver.ResolveActive(root)

	identifier, _, ok := e.identifier.Extract(active)
	if !ok {
		e.cache.RecordFailure()
		return e.fail(finishTiming, record.ErrIdentifierNotFound)
	}
	room, _, ok := e.room.Extract(active)
	if !ok {
		e.cache.RecordFailure()
		return e.fail(finishTiming, record.ErrRoomCodeNotFound)
	}

	candidate := record.ResidentRecord{
		FullName:   name,
		Identifier: identifier,
		RoomCode:   room,
	}
	if err := record.Validate(candidate); err != nil {
		e.cache.RecordFailure()
		return e.fail(finishTiming, err)
	}

	e.cache.Put(candidate, signature)
	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"cache_hit": false})
	}
	return &candidate, nil
}

// ExtractStaff returns the staff identity from the embedded analytics
// payload. Absence is not an error; formatting substitutes a placeholder.
func (e *Engine) ExtractStaff(root *textscope.Node) (record.StaffIdentity, bool) {
	name, _, ok := e.staff.Extract(textscope.NewScope(root))
	if !ok {
		return record.StaffIdentity{}, false
	}
	return record.StaffIdentity{FullName: name}, true
}

// ExtractKeyCodes returns the key codes issued to the given resident, read
// fresh from the current screen. Key sets are never cached: loaner
// assignments change within a session.
func (e *Engine) ExtractKeyCodes(root *textscope.Node, rec *record.ResidentRecord) (record.KeyCodeSet, error) {
	active := e.resolver.ResolveActive(root)
	reportMode := e.resolver.IsReportMode(active)
	return e.keys.Extract(active, rec.FullName, rec.Identifier, reportMode)
}

// FieldRuns returns how many times each field chain has run. Instrumentation
// point: a cache hit must leave the identifier and room counts unchanged.
func (e *Engine) FieldRuns() map[string]int {
	return map[string]int{
		"staff":      e.staff.Runs(),
		"resident":   e.resident.Runs(),
		"identifier": e.identifier.Runs(),
		"room":       e.room.Runs(),
	}
}

func (e *Engine) fail(finishTiming func(bool, map[string]interface{}), err error) (*record.ResidentRecord, error) {
	if finishTiming != nil {
		finishTiming(false, map[string]interface{}{"reason": err.Error()})
	}
	return nil, err
}
