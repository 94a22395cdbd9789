package xorlist

import "github.com/sirkon/errors"

// Insert вставка значения перед pos с возвратом итератора на вставленный
// элемент. Вставка в начало или конец делается за O(1) как PushFront/PushBack,
// во всех остальных случаях переписываются связи нового узла и двух соседей.
// Для итератора обратного обхода "перед" означает перед ним в обратном порядке.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if pos.list != l {
		return pos, l.misuse(errors.Wrap(ErrForeignIterator, "insert"))
	}

	ref, err := l.allocate("insert", v)
	if err != nil {
		return pos, l.fail(err)
	}

	l.join(pos.prev, pos.cur, chain{first: ref, last: ref, n: 1})
	return Iterator[T]{list: l, prev: pos.prev, cur: ref}, nil
}

// Emplace вставка нулевого значения перед pos. Значение заполняется через
// Ptr возвращённого итератора.
func (l *List[T]) Emplace(pos Iterator[T]) (Iterator[T], error) {
	return l.Insert(pos, *new(T))
}

// InsertN вставка n копий v перед pos. Возвращает итератор на первую вставленную
// копию, либо pos, если вставлять нечего. Вставляются либо все копии, либо ни одной.
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	return l.insertValues(pos, "insert n", n, func(int) T { return v })
}

// InsertSlice вставка значений перед pos в том же порядке, в каком они идут в срезе.
func (l *List[T]) InsertSlice(pos Iterator[T], values []T) (Iterator[T], error) {
	return l.insertValues(pos, "insert slice", len(values), func(i int) T { return values[i] })
}

func (l *List[T]) insertValues(pos Iterator[T], op string, n int, value func(int) T) (Iterator[T], error) {
	if pos.list != l {
		return pos, l.misuse(errors.Wrap(ErrForeignIterator, op))
	}
	if n <= 0 {
		return pos, nil
	}

	c, err := l.build(op, n, value)
	if err != nil {
		return pos, l.fail(err)
	}

	l.join(pos.prev, pos.cur, c)
	return Iterator[T]{list: l, prev: pos.prev, cur: c.first}, nil
}

// InsertAt вставка значения так, чтобы оно получило номер index.
// Допустимые index лежат в [0, Len()].
func (l *List[T]) InsertAt(index int, v T) error {
	if index < 0 || index > l.count {
		return l.misuse(errors.Wrap(ErrOutOfRange, "insert at").Int("index", index).Int("size", l.count))
	}

	ref, err := l.allocate("insert at", v)
	if err != nil {
		return l.fail(err)
	}

	left, right := l.junction(index)
	l.join(left, right, chain{first: ref, last: ref, n: 1})
	return nil
}

// Erase удаление элемента под pos с возвратом итератора на следующий за ним.
// Удаление End ничего не делает и возвращает End.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if pos.list != l {
		return pos, l.misuse(errors.Wrap(ErrForeignIterator, "erase"))
	}
	if pos.cur == RefNone {
		return pos, nil
	}

	next := combine(pos.prev, l.node(pos.cur).link)
	l.drop(pos.prev, pos.cur, next)
	return Iterator[T]{list: l, prev: pos.prev, cur: next}, nil
}

// EraseAt удаление элемента с номером index из [0, Len()).
func (l *List[T]) EraseAt(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, l.misuse(errors.Wrap(ErrOutOfRange, "erase at").Int("index", index).Int("size", l.count))
	}

	left, cur := l.junction(index)
	return l.drop(left, cur, combine(left, l.node(cur).link)), nil
}

// EraseRange удаление полуинтервала [first, last) с возвратом итератора на
// last. Пустой интервал ничего не меняет. first должен предшествовать last
// или совпадать с ним, иначе связи списка будут испорчены: это не проверяется.
func (l *List[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	if first.list != l || last.list != l {
		return last, l.misuse(errors.Wrap(ErrForeignIterator, "erase range"))
	}
	if first.cur == last.cur {
		return last, nil
	}

	// Освобождаем узлы интервала. Следующий узел вычисляется до освобождения,
	// после освобождения связь узла обнуляется.
	prev, cur := first.prev, first.cur
	for cur != last.cur && cur != RefNone {
		next := combine(prev, l.node(cur).link)
		l.alloc.Release(cur)
		l.count--
		prev, cur = cur, next
	}

	// prev теперь последний удалённый узел, он же last.prev.
	left, right := first.prev, last.cur
	if left != RefNone {
		ln := l.node(left)
		ln.link = combine(combine(ln.link, first.cur), right)
	} else {
		l.replaceFirst(first.cur, right)
	}
	if right != RefNone {
		rn := l.node(right)
		rn.link = combine(combine(rn.link, prev), left)
	} else {
		l.replaceLast(prev, left)
	}

	return Iterator[T]{list: l, prev: left, cur: right}, nil
}
