package xorlist

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Reverse разворот списка за O(1): связь узла хранит неупорядоченную пару
// соседей, поэтому достаточно поменять местами голову и хвост.
func (l *List[T]) Reverse() {
	l.head, l.tail = l.tail, l.head
}

// Swap обмен содержимым, включая аллокаторы. Политика и логгер остаются
// за своими списками.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.count, other.count = other.count, l.count
	l.alloc, other.alloc = other.alloc, l.alloc
}

// Resize приведение длины к n: лишние элементы удаляются с конца,
// недостающие добавляются в конец копиями v.
func (l *List[T]) Resize(n int, v T) error {
	if n < 0 {
		n = 0
	}

	for l.count > n {
		l.drop(RefNone, l.tail, l.node(l.tail).link)
	}

	if l.count < n {
		c, err := l.build("resize", n-l.count, func(int) T { return v })
		if err != nil {
			return l.fail(err)
		}

		l.join(l.tail, RefNone, c)
	}

	return nil
}

// Sort сортировка по возрастанию.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool {
		return a < b
	})
}

// SortFunc устойчивая сортировка с данным отношением порядка. Узлы остаются
// на местах, переставляются значения, так что итераторы остаются
// действительными, но указывают уже на другие значения.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.count < 2 {
		return
	}

	buf := l.buf.Get(l.count)
	i := 0
	for it := l.Begin(); !it.AtEnd(); it.Next() {
		buf[i] = it.node().value
		i++
	}

	slices.SortStableFunc(buf, less)

	i = 0
	for it := l.Begin(); !it.AtEnd(); it.Next() {
		it.node().value = buf[i]
		i++
	}

	l.buf.Clean(len(buf))
}
