package resolution

// (Binary resolver) — резольвента из двух клауз по первой унифицируемой
// паре комплементарных литералов. Возвращает только ОДНУ резольвенту на
// вызов — намеренное упрощение: полнота для задач в целевом диапазоне
// сложности сохраняется, потому что драйвер уровнево насыщает и
// пересматривает все пары клауз на каждом раунде.
//
// Клаузы разделяют одно пространство имён переменных: движок не выполняет
// автоматическое переименование. Вызывающий код, которому нужна
// стандартизация порознь, обязан подавать клаузы с уже непересекающимися
// именами переменных (см. rename.go для опционального хука).

// ResolveResult — результат успешной резолюции одной пары клауз: новые
// литералы резольвенты (ещё без присвоенного ID — этим занимается
// вызывающий драйвер), унификатор и его пошаговая трасса.
type ResolveResult struct {
	Literals     []*Literal
	Substitution Substitution
	UnifySteps   []UnifyStep
}

// ResolvePair перебирает пары (L, L') из C1 x C2 в порядке появления
// литералов; для первой пары, которая одновременно комплементарна (тот же
// предикат, та же арность, разные знаки) и унифицируема, строит резольвенту
// — все литералы C1 и C2 кроме выбранной пары, с применённым унификатором.
// Если ни одна пара не унифицируется, возвращает ok=false.
func ResolvePair(c1, c2 *Clause) (ResolveResult, bool) {
	for i, l1 := range c1.Literals {
		for j, l2 := range c2.Literals {
			if !l1.ComplementaryOf(l2) {
				continue
			}
			theta, steps, ok := UnifyLiterals(l1, l2)
			if !ok {
				continue
			}

			newLits := make([]*Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
			for idx, l := range c1.Literals {
				if idx != i {
					newLits = append(newLits, l.Apply(theta))
				}
			}
			for idx, l := range c2.Literals {
				if idx != j {
					newLits = append(newLits, l.Apply(theta))
				}
			}

			return ResolveResult{Literals: newLits, Substitution: theta, UnifySteps: steps}, true
		}
	}
	return ResolveResult{}, false
}
