// SPDX-License-Identifier: Apache-2.0

// Package extractors implements the per-field extraction strategies. Each
// field is a prioritized chain of independent strategies with a uniform
// contract: given a scope, return the value or report nothing. The first
// strategy to produce a value wins; partial results from different
// strategies are never merged, which keeps the provenance of every field
// traceable to exactly one strategy.
package extractors

import (
	"desklog/internal/observability"
	"desklog/internal/textscope"
)

// Strategy is one way of recovering a field from a scope. Fn must be pure
// with respect to the scope: no mutation, same scope in, same value out.
type Strategy struct {
	Name string
	Fn   func(*textscope.Scope) (string, bool)
}

// Chain is an ordered fallback of strategies for one field. It counts how
// many times it has been run; the cache layer's tests use that count to
// prove a cache hit skipped the chain.
type Chain struct {
	field      string
	strategies []Strategy
	runs       int
	observer   *observability.StandardObserver
}

// NewChain builds a chain for the named field. Strategies are consulted in
// the given order, most reliable first.
func NewChain(field string, strategies ...Strategy) *Chain {
	return &Chain{field: field, strategies: strategies}
}

// SetObserver sets the observability component
func (c *Chain) SetObserver(observer *observability.StandardObserver) {
	c.observer = observer
}

// Extract runs the chain against the scope and returns the first strategy's
// result, with its name, or ("", "", false) when every strategy came up
// empty. A single strategy finding nothing is not an error; the chain
// simply continues.
func (c *Chain) Extract(s *textscope.Scope) (value string, strategy string, ok bool) {
	c.runs++

	var finishTiming func(bool, map[string]interface{})
	if c.observer != nil {
		finishTiming = c.observer.StartTiming("extractor_chain", "extract", c.field)
	}

	for _, strat := range c.strategies {
		if v, ok := strat.Fn(s); ok {
			if c.observer != nil && c.observer.DebugObserver != nil {
				c.observer.DebugObserver.LogDetail("extractor_chain", c.field+" via "+strat.Name)
			}
			if finishTiming != nil {
				finishTiming(true, map[string]interface{}{"strategy": strat.Name})
			}
			return v, strat.Name, true
		}
	}

	if finishTiming != nil {
		finishTiming(false, map[string]interface{}{"strategies_tried": len(c.strategies)})
	}
	return "", "", false
}

// Runs returns how many times Extract has been called. Instrumentation
// point for cache tests.
func (c *Chain) Runs() int {
	return c.runs
}
