// Package stylesheet parses the small CSS dialect used by the overlay UI and resolves it into
// computed styles. Selectors are limited to .class, #id and bare node types; group selectors
// (a, b) are split into one rule each. At-rule blocks are skipped.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel", "#close" or "button"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse parses content. A syntax error aborts the whole sheet.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var (
		selectors []string
		props     map[string]string
		atDepth   int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				return sheet, nil
			}
			return nil, fmt.Errorf("parse stylesheet: %w", err)
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			selectors = nil
			if atDepth == 0 {
				selectors = splitSelectors(p.Values())
			}
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = joinValues(p.Values())
			}
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors, props = nil, nil
		}
	}
}

func joinValues(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// splitSelectors turns the selector tokens of a ruleset into the simple selectors it names.
// Compound or combinator selectors are dropped.
func splitSelectors(tokens []css.Token) []string {
	var out []string
	for _, part := range strings.Split(joinValues(tokens), ",") {
		sel := strings.TrimSpace(part)
		if supported(sel) {
			out = append(out, sel)
		}
	}
	return out
}

func supported(sel string) bool {
	if sel == "" {
		return false
	}
	name := sel
	if sel[0] == '.' || sel[0] == '#' {
		name = sel[1:]
	}
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// Matches reports whether sel applies to a node with the given type, class and id.
func Matches(sel, typ, class, id string) bool {
	switch {
	case sel == "":
		return false
	case sel[0] == '.':
		return class != "" && sel[1:] == class
	case sel[0] == '#':
		return id != "" && sel[1:] == id
	default:
		return typ != "" && sel == typ
	}
}

// Props returns the merged properties for a node. Type rules apply first, then class rules,
// then id rules; within one level later rules win.
func (s *Stylesheet) Props(typ, class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, level := range []func(string) bool{
		func(sel string) bool { return sel[0] != '.' && sel[0] != '#' },
		func(sel string) bool { return sel[0] == '.' },
		func(sel string) bool { return sel[0] == '#' },
	} {
		for _, rule := range s.Rules {
			if !level(rule.Selector) || !Matches(rule.Selector, typ, class, id) {
				continue
			}
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Merge returns a stylesheet with the rules of s followed by the rules of other.
func (s *Stylesheet) Merge(other *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if other != nil {
		out.Rules = append(out.Rules, other.Rules...)
	}
	return out
}
