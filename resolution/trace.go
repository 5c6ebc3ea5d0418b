package resolution

// (Trace) — записи об унификационных решениях и о шагах резолюции,
// образующие структурированный журнал, из которого serialize.WriteTrace
// строит фиксированный текстовый формат журнала.

import (
	"fmt"
	"sort"
	"strings"
)

// UnifyDecision — какое из семи правил unify-terms сработало на данном шаге.
type UnifyDecision int

const (
	DecisionAlreadyEqual UnifyDecision = iota
	DecisionVarBound
	DecisionOccursCheckFailed
	DecisionFunctorMismatch
	DecisionArityMismatch
	DecisionTypeMismatch
	DecisionDescent
)

func (d UnifyDecision) String() string {
	switch d {
	case DecisionAlreadyEqual:
		return "уже унифицированы"
	case DecisionVarBound:
		return "переменная связана с термом"
	case DecisionOccursCheckFailed:
		return "occurs-check: отказ"
	case DecisionFunctorMismatch:
		return "несовпадение функторов"
	case DecisionArityMismatch:
		return "несовпадение арности"
	case DecisionTypeMismatch:
		return "несовместимые типы"
	case DecisionDescent:
		return "структурный спуск"
	default:
		return "?"
	}
}

// UnifyStep — одна запись внутри одной попытки унификации. Step монотонно
// возрастает с 1 в пределах ОДНОЙ попытки (одного вызова UnifyLiterals или
// UnifyTerms, общий счётчик на все пары аргументов); вызывающая сторона
// (ResolvePair) пространствует эти шаги под своим собственным шагом резолюции.
type UnifyStep struct {
	Step     int
	Decision UnifyDecision
	A, B     string // печатное представление пары термов на этом шаге
	Theta    Substitution
}

func (s UnifyStep) String() string {
	return fmt.Sprintf("    шаг %d: %s (%s, %s)%s", s.Step, s.Decision, s.A, s.B, formatThetaSuffix(s.Theta))
}

func formatThetaSuffix(theta Substitution) string {
	if len(theta) == 0 {
		return ""
	}
	return " -> " + FormatSubstitution(theta)
}

// FormatSubstitution печатает подстановку как отображение с сохранением
// порядка вставки: {var: term, ...}. Порядок недетерминирован в самой map,
// поэтому для воспроизводимости ключи сортируются лексикографически — это
// расходится с "порядком вставки" в педагогически незначимой мелочи
// (видимый порядок одинаков для любого прогона с тем же входом).
func FormatSubstitution(theta Substitution) string {
	if len(theta) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(theta))
	for k := range theta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, Resolve(theta, NewVar(k)).String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// StepKind различает два фиксированных шаблона строк журнала.
type StepKind int

const (
	StepResolution StepKind = iota
	StepContradiction
)

// StepRecord — одна запись журнала на уровне резолюции: клаузы-родители,
// использованный унификатор, результат. N — монотонно растущий номер шага
// резолюции на протяжении всего вызова Prove.
type StepRecord struct {
	N            int
	Kind         StepKind
	C1, C2       *Clause
	Resolvent    *Clause
	Substitution Substitution
	UnifySteps   []UnifyStep // заполняется всегда; печатается только при verbose-трассировке
}

// Render печатает запись в одном из двух фиксированных форматов.
// Если verbose истинно и запись несёт вложенные шаги унификации, они
// печатаются как дополнительные (ненумерованные как внешние шаги) строки.
func (r StepRecord) Render(verbose bool) string {
	var head string
	switch r.Kind {
	case StepContradiction:
		head = fmt.Sprintf("Шаг %d: Резолюция %s и %s -> Противоречие.", r.N, r.C1.String(), r.C2.String())
	default:
		head = fmt.Sprintf("Шаг %d: Унификация %s в %s и %s. Резолюция -> %s.",
			r.N, FormatSubstitution(r.Substitution), r.C1.String(), r.C2.String(), r.Resolvent.String())
	}
	if !verbose || len(r.UnifySteps) == 0 {
		return head
	}
	lines := make([]string, 0, len(r.UnifySteps)+1)
	lines = append(lines, head)
	for _, s := range r.UnifySteps {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// Trace — полный журнал, возвращённый из Prove: все записи в порядке их
// первого появления. Итоговый результат доказательства хранится не здесь, а
// в Result.Outcome.
type Trace struct {
	Records []StepRecord
}

func (t *Trace) append(r StepRecord) {
	t.Records = append(t.Records, r)
}
