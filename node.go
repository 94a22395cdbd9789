package xorlist

// Node узел списка: значение и слово связи combine(prev, next).
// У крайних узлов одна из сторон RefNone, поэтому связь равна
// ссылке на единственного соседа.
type Node[T any] struct {
	value T
	link  Ref
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) cleanup() {
	var zero T
	n.value = zero // для упрощения работы GC
	n.link = RefNone
}
