package resolution

// (Term model) — переменные, константы и составные термы первого порядка.

import (
	"strings"
)

// Kind классифицирует терм по форме.
type Kind int

const (
	KindVariable Kind = iota
	KindConstant
	KindCompound
)

// Term — переменная, константа или составной терм (функтор + аргументы).
// Различие между переменной и константой определяется ИСКЛЮЧИТЕЛЬНО первым
// символом имени: строчная латинская буква — переменная, всё остальное —
// константа. Отдельного признака не хранится.
type Term struct {
	Name string
	Args []*Term // nil для переменных и констант, непустой для составных термов
}

// NewVar создаёт атомарный терм с именем name. Переменной он будет только
// если name начинается со строчной латинской буквы (см. Classify).
func NewVar(name string) *Term {
	return &Term{Name: name}
}

// NewConst создаёт атомарный терм с именем name. Константой он будет только
// если name НЕ начинается со строчной латинской буквы: NewConst("a") даёт
// переменную (см. Classify).
func NewConst(name string) *Term {
	return &Term{Name: name}
}

// NewCompound создаёт составной терм functor(args...). args не должен быть пуст.
func NewCompound(functor string, args ...*Term) *Term {
	return &Term{Name: functor, Args: args}
}

// Classify возвращает форму терма.
func (t *Term) Classify() Kind {
	if len(t.Args) > 0 {
		return KindCompound
	}
	if isVariableName(t.Name) {
		return KindVariable
	}
	return KindConstant
}

// IsVariable — истина для переменных (и только для них).
func (t *Term) IsVariable() bool {
	return t.Classify() == KindVariable
}

// IsCompound — истина для составных термов.
func (t *Term) IsCompound() bool {
	return len(t.Args) > 0
}

// isVariableName реализует предикат "первый символ — строчная латинская буква".
func isVariableName(name string) bool {
	return IsVariableName(name)
}

// IsVariableName экспортирует предикат классификации имени для внешних
// потребителей (в частности, serialize.ParseInfixClause — свободный
// текстовый разбор литералов использует то же правило var-vs-const, что и
// структурированный формат).
func IsVariableName(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return r >= 'a' && r <= 'z'
}

// String печатает терм: имя для атомарных термов, f(x, y) для составных.
func (t *Term) String() string {
	if !t.IsCompound() {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Equal — структурное (не унификационное) равенство термов, чувствительное
// к имени функтора и порядку аргументов.
func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Apply подставляет σ в терм рекурсивно: переменная разрешается через σ
// (и полученный результат снова подставляется, пока не будет достигнута
// неподвижная точка), константа возвращается без изменений, составной терм
// пересобирается с подставленными аргументами.
func (t *Term) Apply(sigma Substitution) *Term {
	switch t.Classify() {
	case KindVariable:
		if bound, ok := sigma.Lookup(t.Name); ok {
			return bound.Apply(sigma)
		}
		return t
	case KindCompound:
		newArgs := make([]*Term, len(t.Args))
		for i, a := range t.Args {
			newArgs[i] = a.Apply(sigma)
		}
		return &Term{Name: t.Name, Args: newArgs}
	default: // KindConstant
		return t
	}
}

// Occurs — истина, если переменная v встречается где-либо внутри t
// (включая вложенные составные термы). Используется occurs-check'ом унификатора.
func Occurs(v *Term, t *Term) bool {
	if t.Name == v.Name && !t.IsCompound() {
		return true
	}
	for _, a := range t.Args {
		if Occurs(v, a) {
			return true
		}
	}
	return false
}
