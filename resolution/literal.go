package resolution

// (Literal model) — знаковый атом: предикат, аргументы, флаг отрицания.

import (
	"strings"
)

// Literal — предикат, применённый к кортежу термов, возможно отрицаемый.
type Literal struct {
	Predicate string
	Args      []*Term
	Negated   bool
}

// NewLiteral строит литерал. negated=true соответствует ¬Predicate(args...).
func NewLiteral(predicate string, args []*Term, negated bool) *Literal {
	return &Literal{Predicate: predicate, Args: args, Negated: negated}
}

// String печатает литерал: ¬P(a, b) для отрицательных, P(a, b) иначе.
func (l *Literal) String() string {
	prefix := ""
	if l.Negated {
		prefix = "¬"
	}
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.String()
	}
	return prefix + l.Predicate + "(" + strings.Join(parts, ", ") + ")"
}

// Negate возвращает копию литерала с противоположным знаком.
func (l *Literal) Negate() *Literal {
	return NewLiteral(l.Predicate, l.Args, !l.Negated)
}

// Arity — количество аргументов литерала.
func (l *Literal) Arity() int {
	return len(l.Args)
}

// ComplementaryOf — истина, если l и other могли бы резольвироваться:
// тот же предикат, та же арность, противоположный знак. Не проверяет
// унифицируемость аргументов — только форму.
func (l *Literal) ComplementaryOf(other *Literal) bool {
	return l.Predicate == other.Predicate &&
		l.Arity() == other.Arity() &&
		l.Negated != other.Negated
}

// Equal — структурное равенство литералов (предикат, знак, поаргументное
// структурное равенство термов).
func (l *Literal) Equal(other *Literal) bool {
	if l.Predicate != other.Predicate || l.Negated != other.Negated {
		return false
	}
	if len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Apply подставляет σ во все аргументы литерала, сохраняя предикат и знак.
func (l *Literal) Apply(sigma Substitution) *Literal {
	newArgs := make([]*Term, len(l.Args))
	for i, a := range l.Args {
		newArgs[i] = a.Apply(sigma)
	}
	return NewLiteral(l.Predicate, newArgs, l.Negated)
}
