package xorlist

import "github.com/sirkon/errors"

const (
	// ErrEmptyContainer чтение или удаление элемента пустого списка.
	ErrEmptyContainer errors.Const = "container is empty"

	// ErrOutOfRange позиция вне допустимого диапазона.
	ErrOutOfRange errors.Const = "position out of range"

	// ErrAllocationFailure аллокатор не смог выдать узел.
	ErrAllocationFailure errors.Const = "node allocation failure"

	// ErrForeignIterator итератор получен от другого списка.
	ErrForeignIterator errors.Const = "iterator belongs to another list"
)

// KindOf получить вид ошибки возвращённой списком.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrEmptyContainer):
		return KindEmptyContainer
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrAllocationFailure):
		return KindAllocationFailure
	case errors.Is(err, ErrForeignIterator):
		return KindForeignIterator
	default:
		return KindInternal
	}
}

// ErrorKind виды ошибок списка.
type ErrorKind int32

const (
	// KindOK ошибки нет.
	KindOK ErrorKind = 200

	// KindInternal ошибка не из числа известных.
	KindInternal ErrorKind = 1000

	// KindEmptyContainer соответствует ErrEmptyContainer.
	KindEmptyContainer ErrorKind = 4000

	// KindOutOfRange соответствует ErrOutOfRange.
	KindOutOfRange ErrorKind = 4001

	// KindForeignIterator соответствует ErrForeignIterator.
	KindForeignIterator ErrorKind = 4002

	// KindAllocationFailure соответствует ErrAllocationFailure.
	KindAllocationFailure ErrorKind = 5000
)

func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindInternal:
		return "INTERNAL_ERROR"
	case KindEmptyContainer:
		return "EMPTY_CONTAINER"
	case KindOutOfRange:
		return "OUT_OF_RANGE"
	case KindForeignIterator:
		return "FOREIGN_ITERATOR"
	case KindAllocationFailure:
		return "ALLOCATION_FAILURE"
	default:
		return "UNKNOWN_ERROR"
	}
}
