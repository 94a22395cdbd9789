package xorlist

// CBegin итератор только для чтения на первом элементе.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{it: l.Begin()}
}

// CEnd итератор только для чтения за последним элементом.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{it: l.End()}
}

// CRBegin итератор обратного обхода только для чтения.
func (l *List[T]) CRBegin() ConstIterator[T] {
	return ConstIterator[T]{it: l.RBegin()}
}

// CREnd конец обратного обхода только для чтения.
func (l *List[T]) CREnd() ConstIterator[T] {
	return ConstIterator[T]{it: l.REnd()}
}

// ConstIterator Iterator без возможности изменять значения и позиционировать
// изменения списка.
type ConstIterator[T comparable] struct {
	it Iterator[T]
}

// Next шаг вперёд.
func (c *ConstIterator[T]) Next() { c.it.Next() }

// Prev шаг назад.
func (c *ConstIterator[T]) Prev() { c.it.Prev() }

// Advance n шагов.
func (c *ConstIterator[T]) Advance(n int) { c.it.Advance(n) }

// AtEnd проверка на конец.
func (c ConstIterator[T]) AtEnd() bool { return c.it.AtEnd() }

// AtBegin проверка на начало.
func (c ConstIterator[T]) AtBegin() bool { return c.it.AtBegin() }

// Value значение под итератором.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Equal см. Iterator.Equal.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

// Less см. Iterator.Less.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// DistanceTo см. Iterator.DistanceTo.
func (c ConstIterator[T]) DistanceTo(other ConstIterator[T]) int { return c.it.DistanceTo(other.it) }
