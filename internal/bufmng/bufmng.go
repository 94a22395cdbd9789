package bufmng

// New конструктор управления буфером
func New[T any]() *BufferManager[T] {
	return &BufferManager[T]{}
}

// BufferManager управление переиспользуемым буфером. Нулевое значение готово
// к работе.
type BufferManager[T any] struct {
	buf []T
}

// Get выдать буфер нужного размера. Содержимое буфера не определено.
func (b *BufferManager[T]) Get(n int) []T {
	if cap(b.buf) >= n {
		return b.buf[:n]
	}

	b.buf = make([]T, n)
	return b.buf
}

// Clean обнуление первых n элементов буфера, чтобы он не удерживал
// значения от сборщика мусора.
func (b *BufferManager[T]) Clean(n int) {
	if n > len(b.buf) {
		n = len(b.buf)
	}

	var zero T
	for i := range b.buf[:n] {
		b.buf[i] = zero
	}
}

// Cap текущая ёмкость буфера.
func (b *BufferManager[T]) Cap() int {
	return cap(b.buf)
}
