package resolution

// (Clause model) — дизъюнкция литералов с set-семантикой: равенство клауз —
// это равенство мультимножеств литералов, но дубликаты схлопываются при
// построении, так что на практике сравнение работает как равенство множеств.

import (
	"sort"
	"strings"
)

// Clause — неизменяемая (после построения) дизъюнкция литералов. Пустая
// клауза (len(Literals)==0) — это □, формальная ложь.
type Clause struct {
	ID       int
	Literals []*Literal
	Origin   string      // "init" — из входных данных, "res" — получена резолюцией
	Parents  [2]*Clause  // ненулевые только когда Origin == "res"
	Rule     string      // текст унификации для трассировки
}

// NewClause строит клаузу: удаляет дубликаты литералов и сортирует их в
// каноническом порядке (по строковому представлению), чтобы сравнение и
// построение ключа дедупликации были O(k), а не O(k^2).
func NewClause(id int, literals []*Literal, origin string, parents [2]*Clause, rule string) *Clause {
	unique := dedupeLiterals(literals)
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})
	return &Clause{ID: id, Literals: unique, Origin: origin, Parents: parents, Rule: rule}
}

func dedupeLiterals(literals []*Literal) []*Literal {
	seen := make(map[string]bool, len(literals))
	result := make([]*Literal, 0, len(literals))
	for _, lit := range literals {
		key := lit.String()
		if !seen[key] {
			seen[key] = true
			result = append(result, lit)
		}
	}
	return result
}

// IsEmpty — истина для пустой клаузы (□).
func (c *Clause) IsEmpty() bool {
	return len(c.Literals) == 0
}

// String печатает клаузу как L1 ∨ L2 ∨ ... или □ если она пуста.
func (c *Clause) String() string {
	if c.IsEmpty() {
		return "□"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Equal — set-равенство клауз: благодаря канонической сортировке в
// NewClause это сводится к поэлементному сравнению.
func (c *Clause) Equal(other *Clause) bool {
	if len(c.Literals) != len(other.Literals) {
		return false
	}
	for i := range c.Literals {
		if !c.Literals[i].Equal(other.Literals[i]) {
			return false
		}
	}
	return true
}

// Apply подставляет σ во все литералы клаузы. Не переприсваивает ID,
// Origin или Parents — вызывающий код решает, какую клаузу это порождает.
func (c *Clause) Apply(sigma Substitution) []*Literal {
	newLits := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		newLits[i] = l.Apply(sigma)
	}
	return newLits
}

// containsEqual — истина, если клауза equal к одной из клауз в set.
func containsEqual(set []*Clause, c *Clause) bool {
	for _, existing := range set {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}
