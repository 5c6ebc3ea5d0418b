package serialize

// (Free-text sugar, optional convenience on top of the structured CNF
// format). ParseInfixClause accepts a clause written in the surface
// syntax clauses render in — "¬P(a, b) ∨ Q(x)" — for quick interactive
// use, without requiring a caller to hand-build the structured document.
// Nested compound arguments are supported via bracket-depth tracking.

import (
	"fmt"
	"strings"

	"github.com/googgom/go-resolution-engine/resolution"
)

// ParseInfixClause parses one clause written as literals joined by "∨",
// each optionally prefixed with "¬". Returns a *ParseError (wrapping file
// "<infix>") on malformed syntax.
func ParseInfixClause(s string) (*resolution.Clause, error) {
	parts := strings.Split(s, "∨")
	var literals []*resolution.Literal
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, parseErrorf("<infix>", fmt.Sprintf("literal[%d]", i), "empty literal")
		}
		lit, err := parseInfixLiteral(part, i)
		if err != nil {
			return nil, err
		}
		literals = append(literals, lit)
	}
	return resolution.NewClause(1, literals, "init", [2]*resolution.Clause{}, ""), nil
}

func parseInfixLiteral(s string, index int) (*resolution.Literal, error) {
	path := fmt.Sprintf("literal[%d]", index)
	negated := strings.HasPrefix(s, "¬")
	if negated {
		s = strings.TrimPrefix(s, "¬")
	}

	open := strings.Index(s, "(")
	if open == -1 {
		// A nullary predicate, e.g. "P".
		return resolution.NewLiteral(s, nil, negated), nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, parseErrorf("<infix>", path, "unbalanced parentheses in %q", s)
	}

	predicate := s[:open]
	argsStr := s[open+1 : len(s)-1]
	terms, err := parseInfixArgs(argsStr, path)
	if err != nil {
		return nil, err
	}
	return resolution.NewLiteral(predicate, terms, negated), nil
}

// parseInfixArgs splits a comma-separated argument list while respecting
// nesting depth, then parses each argument as a (possibly compound) term.
func parseInfixArgs(s string, path string) ([]*resolution.Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	rawArgs, err := splitTopLevel(s, path)
	if err != nil {
		return nil, err
	}
	terms := make([]*resolution.Term, 0, len(rawArgs))
	for _, raw := range rawArgs {
		term, err := parseInfixTerm(strings.TrimSpace(raw), path)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func splitTopLevel(s string, path string) ([]string, error) {
	var parts []string
	var current strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
			current.WriteRune(r)
		case ')':
			depth--
			if depth < 0 {
				return nil, parseErrorf("<infix>", path, "unbalanced parentheses")
			}
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
				continue
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, parseErrorf("<infix>", path, "unbalanced parentheses")
	}
	parts = append(parts, current.String())
	return parts, nil
}

func parseInfixTerm(s string, path string) (*resolution.Term, error) {
	open := strings.Index(s, "(")
	if open == -1 {
		if resolution.IsVariableName(s) {
			return resolution.NewVar(s), nil
		}
		return resolution.NewConst(s), nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, parseErrorf("<infix>", path, "unbalanced parentheses in term %q", s)
	}
	functor := s[:open]
	args, err := parseInfixArgs(s[open+1:len(s)-1], path)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, parseErrorf("<infix>", path, "compound term %q must have at least one argument", s)
	}
	return resolution.NewCompound(functor, args...), nil
}
