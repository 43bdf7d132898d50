// SPDX-License-Identifier: Apache-2.0

package textscope

import "strings"

// Node is one text-bearing element of the rendered page, supplied by the
// host-integration layer. The engine never walks the live page itself; it
// receives a snapshot tree per extraction call and treats it as read-only.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Hidden   bool
	Children []*Node
}

// Attr returns the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasClass reports whether the node's class attribute contains the given
// class as a whole token. Substring matching is deliberately avoided:
// "active" must not match "inactive".
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and every descendant in document order. Returning false from
// visit stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the first node (document order) satisfying pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node satisfying pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// walkVisible visits n and every descendant in document order, pruning
// hidden subtrees. A node inside a hidden ancestor is never visited no
// matter its own flags.
func (n *Node) walkVisible(visit func(*Node) bool) bool {
	if n == nil || n.Hidden {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walkVisible(visit) {
			return false
		}
	}
	return true
}

// FindVisible returns the first visible node (document order) satisfying
// pred, or nil. Hidden subtrees are pruned wholesale.
func (n *Node) FindVisible(pred func(*Node) bool) *Node {
	var found *Node
	n.walkVisible(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAllVisible returns every visible node satisfying pred, in document
// order. Hidden subtrees are pruned wholesale.
func (n *Node) FindAllVisible(pred func(*Node) bool) []*Node {
	var out []*Node
	n.walkVisible(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// VisibleText flattens the visible text of the subtree rooted at n. Hidden
// subtrees are skipped entirely, script payloads are never part of rendered
// text, and segments are newline-joined so label/value pairs from separate
// elements cannot run together into accidental pattern matches.
func (n *Node) VisibleText() string {
	var parts []string
	var collect func(*Node)
	collect = func(c *Node) {
		if c == nil || c.Hidden || c.Tag == "script" {
			return
		}
		if t := strings.TrimSpace(c.Text); t != "" {
			parts = append(parts, t)
		}
		for _, child := range c.Children {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(parts, "\n")
}

// ScriptPayloads returns the raw text of every script node in the subtree,
// visible or not. Embedded initialization payloads are text blobs that never
// render, so the hidden flag does not apply to them.
func (n *Node) ScriptPayloads() []string {
	var payloads []string
	n.Walk(func(c *Node) bool {
		if c.Tag == "script" && c.Text != "" {
			payloads = append(payloads, c.Text)
		}
		return true
	})
	return payloads
}

// Scope is a resolved extraction region: a subtree handle plus its flattened
// visible text, computed once so every extractor in a call scans the same
// snapshot string.
type Scope struct {
	Root *Node
	text string
	done bool
}

// NewScope wraps a subtree as an extraction scope.
func NewScope(root *Node) *Scope {
	return &Scope{Root: root}
}

// Text returns the scope's flattened visible text, computed on first use.
func (s *Scope) Text() string {
	if s == nil || s.Root == nil {
		return ""
	}
	if !s.done {
		s.text = s.Root.VisibleText()
		s.done = true
	}
	return s.text
}
