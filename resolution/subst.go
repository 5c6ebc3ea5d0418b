package resolution

// (Substitution) — конечное отображение имени переменной на терм. Каждое
// расширение возвращает новое значение; старое остаётся валидным (unification
// без мутации существующих подстановок).

// Substitution — var -> term. Композиция не выполняется заранее: Lookup
// возвращает только прямую привязку, а Term.Apply и Resolve рекурсивно
// "дожимают" результат до неподвижной точки.
type Substitution map[string]*Term

// EmptySubstitution — нейтральный элемент, с которого начинается унификация.
func EmptySubstitution() Substitution {
	return make(Substitution)
}

// Extend возвращает НОВУЮ подстановку, содержащую всё из sigma плюс
// привязку v -> t. Не переписывает существующие привязки.
func Extend(sigma Substitution, v *Term, t *Term) Substitution {
	next := make(Substitution, len(sigma)+1)
	for k, val := range sigma {
		next[k] = val
	}
	next[v.Name] = t
	return next
}

// Lookup возвращает терм, на который напрямую ссылается имя переменной (без
// дальнейшего преследования цепочки), и признак наличия привязки.
func (sigma Substitution) Lookup(name string) (*Term, bool) {
	t, ok := sigma[name]
	return t, ok
}

// Resolve преследует переменную v через σ, пока результат не станет
// несвязанной переменной либо (возможно составным) термом; если терм
// составной, рекурсивно разрешает внутри него. Используется для печати и
// для отчёта "полной подстановки" после унификации.
func Resolve(sigma Substitution, v *Term) *Term {
	return resolveTerm(sigma, v, make(map[string]bool))
}

func resolveTerm(sigma Substitution, t *Term, seen map[string]bool) *Term {
	switch t.Classify() {
	case KindVariable:
		if seen[t.Name] {
			return t // защита от случайного цикла при обходе печати
		}
		if bound, ok := sigma.Lookup(t.Name); ok {
			seen[t.Name] = true
			return resolveTerm(sigma, bound, seen)
		}
		return t
	case KindCompound:
		newArgs := make([]*Term, len(t.Args))
		for i, a := range t.Args {
			newArgs[i] = resolveTerm(sigma, a, seen)
		}
		return &Term{Name: t.Name, Args: newArgs}
	default:
		return t
	}
}
