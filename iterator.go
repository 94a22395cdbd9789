package xorlist

// Begin итератор на первом элементе.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, prev: RefNone, cur: l.head}
}

// End итератор за последним элементом.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l, prev: l.tail, cur: RefNone}
}

// RBegin итератор обратного обхода на последнем элементе. Отдельного типа
// для обратного обхода нет: связь узла не различает направлений, так что
// достаточно начать с хвоста.
func (l *List[T]) RBegin() Iterator[T] {
	return Iterator[T]{list: l, prev: RefNone, cur: l.tail}
}

// REnd итератор обратного обхода за первым элементом.
func (l *List[T]) REnd() Iterator[T] {
	return Iterator[T]{list: l, prev: l.head, cur: RefNone}
}

// Iterator курсор по списку. Одного узла недостаточно, чтобы сделать шаг,
// поэтому итератор помнит ещё и узел, из которого пришёл.
//
// Итератор становится недействительным при удалении prev или cur узлов,
// это не отслеживается.
type Iterator[T comparable] struct {
	list *List[T]
	prev Ref
	cur  Ref
}

// Next шаг вперёд, ничего не делает в конце.
func (it *Iterator[T]) Next() {
	if it.cur == RefNone {
		return
	}

	next := combine(it.prev, it.list.node(it.cur).link)
	it.prev, it.cur = it.cur, next
}

// Prev шаг назад, ничего не делает в начале.
func (it *Iterator[T]) Prev() {
	if it.prev == RefNone {
		return
	}

	before := combine(it.list.node(it.prev).link, it.cur)
	it.prev, it.cur = before, it.prev
}

// Advance n шагов вперёд, при отрицательном n назад. Останавливается на концах.
func (it *Iterator[T]) Advance(n int) {
	for ; n > 0 && it.cur != RefNone; n-- {
		it.Next()
	}
	for ; n < 0 && it.prev != RefNone; n++ {
		it.Prev()
	}
}

// AtEnd проверка, что итератор за последним элементом.
func (it Iterator[T]) AtEnd() bool {
	return it.cur == RefNone
}

// AtBegin проверка, что шагать назад некуда.
func (it Iterator[T]) AtBegin() bool {
	return it.prev == RefNone
}

// Value значение под итератором, нулевое в конце.
func (it Iterator[T]) Value() T {
	if it.cur == RefNone {
		var zero T
		return zero
	}

	return it.node().value
}

// Ptr указатель на значение под итератором, nil в конце. Действителен
// до удаления элемента.
func (it Iterator[T]) Ptr() *T {
	if it.cur == RefNone {
		return nil
	}

	return &it.node().value
}

// Set замена значения под итератором. В конце ничего не делает.
func (it Iterator[T]) Set(v T) {
	if it.cur == RefNone {
		return
	}

	it.node().value = v
}

// Equal проверка, что итераторы одного списка указывают на одну позицию.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.list == other.list && it.cur == other.cur
}

// Less проверка, что it встречается раньше other при обходе от it.
// Итераторы разных списков не упорядочены. Два итератора в начале
// разных обходов сравниваются по ссылкам.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	if it.list != other.list || it.cur == other.cur {
		return false
	}

	if it.prev == RefNone && other.prev == RefNone {
		return it.cur < other.cur
	}

	for next := it; !next.AtEnd(); {
		next.Next()
		if next.cur == other.cur {
			return true
		}
	}

	return false
}

// DistanceTo число шагов от it до other: положительное, если other
// впереди, отрицательное, если позади. Поиск идёт сразу в обе стороны,
// так что стоимость определяется ближайшим направлением. Для итераторов
// разных списков или недостижимых позиций возвращается 0.
func (it Iterator[T]) DistanceTo(other Iterator[T]) int {
	if it.list != other.list {
		return 0
	}

	fwd, bwd := it, it
	for steps := 0; ; steps++ {
		if fwd.cur == other.cur {
			return steps
		}
		if bwd.cur == other.cur {
			return -steps
		}
		if fwd.AtEnd() && bwd.AtBegin() {
			return 0
		}

		fwd.Next()
		bwd.Prev()
	}
}

func (it Iterator[T]) node() *Node[T] {
	return it.list.node(it.cur)
}
