package xorlist

// Allocator хранилище узлов списка.
//
// Реализация обязана:
//   - никогда не выдавать RefNone;
//   - не перемещать узел, пока он не освобождён: указатель, полученный
//     через Node, должен оставаться действительным до Release;
//   - возвращать из Allocate ошибку оборачивающую ErrAllocationFailure,
//     если узел выдать нельзя;
//   - быть сравнимым значением (указателем), так как списки на одном
//     аллокаторе обмениваются узлами без копирования.
type Allocator[T any] interface {
	// Allocate выдача свободного узла с нулевым значением и связью.
	Allocate() (Ref, error)

	// Release возврат узла в хранилище.
	Release(ref Ref)

	// Node доступ к узлу по ссылке.
	Node(ref Ref) *Node[T]

	// Limit максимальное число одновременно выданных узлов, 0 если
	// ограничения нет.
	Limit() int
}
