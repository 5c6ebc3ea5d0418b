package resolution

// (Unifier) — Robinson-унификация с occurs-check и пошаговой трассой.
// Порядок случаев — ровно тот, что описан ниже:
//
//  1. явный сбой (представлен через bool ok, а не через значение σ — σ сама
//     по себе никогда не несёт признак отказа в этой реализации);
//  2. если одна из сторон — связанная переменная, один шаг её разрешения;
//  3. структурное равенство — успех без изменения σ;
//  4/5. переменная против чего угодно — occurs-check, затем extend;
//  6. составной против составного — функтор/арность, затем рекурсия по
//     аргументам;
//  7. всё остальное — отказ.

// unifyTerms — рекурсивное сердце унификатора. counter нумерует шаги в
// пределах одной попытки унификации (одного вызова UnifyLiterals), steps
// накапливает трассу по ходу рекурсии.
func unifyTerms(a, b *Term, theta Substitution, counter *int, steps *[]UnifyStep) (Substitution, bool) {
	// Случай 2: один шаг разрешения связанной переменной с каждой стороны.
	if a.IsVariable() {
		if bound, ok := theta.Lookup(a.Name); ok {
			return unifyTerms(bound, b, theta, counter, steps)
		}
	}
	if b.IsVariable() {
		if bound, ok := theta.Lookup(b.Name); ok {
			return unifyTerms(a, bound, theta, counter, steps)
		}
	}

	// Случай 3: термы уже структурно равны.
	if a.Equal(b) {
		record(steps, counter, DecisionAlreadyEqual, a, b, theta)
		return theta, true
	}

	// Случай 4: a — переменная.
	// Occurs-check смотрит на b с уже применённой σ, иначе привязка могла бы
	// замкнуть цикл через существующие привязки.
	if a.IsVariable() {
		if Occurs(a, b.Apply(theta)) {
			record(steps, counter, DecisionOccursCheckFailed, a, b, nil)
			return nil, false
		}
		next := Extend(theta, a, b)
		record(steps, counter, DecisionVarBound, a, b, next)
		return next, true
	}
	// Случай 5: b — переменная (симметрично случаю 4).
	if b.IsVariable() {
		if Occurs(b, a.Apply(theta)) {
			record(steps, counter, DecisionOccursCheckFailed, b, a, nil)
			return nil, false
		}
		next := Extend(theta, b, a)
		record(steps, counter, DecisionVarBound, b, a, next)
		return next, true
	}

	// Случай 6: оба составные.
	if a.IsCompound() && b.IsCompound() {
		if a.Name != b.Name {
			record(steps, counter, DecisionFunctorMismatch, a, b, nil)
			return nil, false
		}
		if len(a.Args) != len(b.Args) {
			record(steps, counter, DecisionArityMismatch, a, b, nil)
			return nil, false
		}
		record(steps, counter, DecisionDescent, a, b, theta)
		cur := theta
		for i := range a.Args {
			next, ok := unifyTerms(a.Args[i], b.Args[i], cur, counter, steps)
			if !ok {
				return nil, false
			}
			cur = next
		}
		return cur, true
	}

	// Случай 7: константа против составного, или разные константы.
	record(steps, counter, DecisionTypeMismatch, a, b, nil)
	return nil, false
}

func record(steps *[]UnifyStep, counter *int, decision UnifyDecision, a, b *Term, theta Substitution) {
	*counter++
	*steps = append(*steps, UnifyStep{
		Step:     *counter,
		Decision: decision,
		A:        a.String(),
		B:        b.String(),
		Theta:    theta,
	})
}

// UnifyTerms унифицирует два терма под пустой начальной подстановкой и
// возвращает итоговую подстановку, пошаговую трассу и признак успеха.
func UnifyTerms(a, b *Term) (Substitution, []UnifyStep, bool) {
	counter := 0
	var steps []UnifyStep
	theta, ok := unifyTerms(a, b, EmptySubstitution(), &counter, &steps)
	return theta, steps, ok
}

// UnifyLiterals унифицирует два литерала: предикаты должны совпадать,
// знаки отрицания — различаться (эта функция используется движком
// исключительно для поиска унификаторов под резолюцию), арности — совпадать.
// При выполнении предусловий унифицирует списки аргументов попарно под
// пустой начальной подстановкой.
func UnifyLiterals(l1, l2 *Literal) (Substitution, []UnifyStep, bool) {
	if l1.Predicate != l2.Predicate || l1.Negated == l2.Negated || l1.Arity() != l2.Arity() {
		return nil, nil, false
	}
	counter := 0
	var steps []UnifyStep
	theta := EmptySubstitution()
	for i := range l1.Args {
		next, ok := unifyTerms(l1.Args[i], l2.Args[i], theta, &counter, &steps)
		if !ok {
			return nil, steps, false
		}
		theta = next
	}
	return theta, steps, true
}
