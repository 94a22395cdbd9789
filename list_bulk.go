package xorlist

import "github.com/sirkon/errors"

// Splice перенос всех узлов other в позицию position из [0, Len()].
// other становится пустым. Если списки на разных аллокаторах, то значения
// other копируются, а сам other очищается.
//
// Стыкуются только связи на границах: конец левой части, оба конца
// переносимой цепочки и начало правой части. Для вставки в середину
// позиция ищется обходом с ближайшего конца.
func (l *List[T]) Splice(position int, other *List[T]) error {
	if position < 0 || position > l.count {
		return l.misuse(
			errors.Wrap(ErrOutOfRange, "splice").Int("position", position).Int("size", l.count),
		)
	}
	if other == l || other.count == 0 {
		return nil
	}

	c, err := l.take(other, "splice")
	if err != nil {
		return l.fail(err)
	}

	left, right := l.junction(position)
	l.join(left, right, c)
	return nil
}

// Merge присоединение узлов other к концу списка, other становится пустым.
// Это конкатенация, а не слияние упорядоченных последовательностей:
// [1 3] и [2 4] дают [1 3 2 4]. Сохранение порядка, если он нужен,
// остаётся на вызывающем. Для списков на одном аллокаторе O(1).
func (l *List[T]) Merge(other *List[T]) error {
	if other == l || other.count == 0 {
		return nil
	}

	c, err := l.take(other, "merge")
	if err != nil {
		return l.fail(err)
	}

	l.join(l.tail, RefNone, c)
	return nil
}

// take отбор цепочки узлов у other для вставки в l. На том же аллокаторе
// узлы отдаются как есть, иначе копируются значения. В случае ошибки
// other не меняется.
func (l *List[T]) take(other *List[T], op string) (chain, error) {
	if l.alloc == other.alloc {
		c := chain{first: other.head, last: other.tail, n: other.count}
		other.reset()
		return c, nil
	}

	values := other.Values()
	c, err := l.build(op, len(values), func(i int) T { return values[i] })
	if err != nil {
		return chain{}, err
	}

	other.Clear()
	return c, nil
}

// Remove удаление всех элементов равных v. Возвращает число удалённых.
func (l *List[T]) Remove(v T) int {
	return l.RemoveIf(func(x T) bool {
		return x == v
	})
}

// RemoveIf удаление всех элементов удовлетворяющих pred за один проход.
// Возвращает число удалённых.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	var removed int
	var prev Ref
	cur := l.head
	for cur != RefNone {
		// Следующий узел вычисляется до удаления текущего, после удаления
		// связь prev уже указывает на next.
		n := l.node(cur)
		next := combine(prev, n.link)
		if pred(n.value) {
			l.drop(prev, cur, next)
			removed++
		} else {
			prev = cur
		}
		cur = next
	}

	return removed
}

// Unique схлопывание последовательностей подряд идущих равных элементов
// до первого из них. Сравниваются только соседи. Возвращает число удалённых.
func (l *List[T]) Unique() int {
	if l.count < 2 {
		return 0
	}

	var removed int
	var prev Ref
	cur := l.head
	for {
		c := l.node(cur)
		next := combine(prev, c.link)
		if next == RefNone {
			return removed
		}

		nn := l.node(next)
		if nn.value != c.value {
			prev, cur = cur, next
			continue
		}

		l.drop(cur, next, combine(cur, nn.link))
		removed++
	}
}
