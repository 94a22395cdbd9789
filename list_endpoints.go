package xorlist

import "github.com/sirkon/errors"

// PushBack добавление значения в конец списка.
func (l *List[T]) PushBack(v T) error {
	ref, err := l.allocate("push back", v)
	if err != nil {
		return l.fail(err)
	}

	l.join(l.tail, RefNone, chain{first: ref, last: ref, n: 1})
	return nil
}

// PushFront добавление значения в начало списка.
func (l *List[T]) PushFront(v T) error {
	ref, err := l.allocate("push front", v)
	if err != nil {
		return l.fail(err)
	}

	l.join(RefNone, l.head, chain{first: ref, last: ref, n: 1})
	return nil
}

// EmplaceBack добавление нулевого значения в конец списка с возвратом указателя
// на него для заполнения на месте. Указатель действителен до удаления элемента.
// При проглоченном политикой отказе аллокатора возвращается nil.
func (l *List[T]) EmplaceBack() (*T, error) {
	ref, err := l.allocate("emplace back", *new(T))
	if err != nil {
		return nil, l.fail(err)
	}

	l.join(l.tail, RefNone, chain{first: ref, last: ref, n: 1})
	return &l.node(ref).value, nil
}

// EmplaceFront то же самое что и EmplaceBack, но для начала списка.
func (l *List[T]) EmplaceFront() (*T, error) {
	ref, err := l.allocate("emplace front", *new(T))
	if err != nil {
		return nil, l.fail(err)
	}

	l.join(RefNone, l.head, chain{first: ref, last: ref, n: 1})
	return &l.node(ref).value, nil
}

// PopBack удаление последнего элемента с возвратом его значения.
func (l *List[T]) PopBack() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, l.misuse(errors.Wrap(ErrEmptyContainer, "pop back"))
	}

	// Хвост это начало обратного обхода, сосед хвоста извлекается из его связи.
	return l.drop(RefNone, l.tail, l.node(l.tail).link), nil
}

// PopFront удаление первого элемента с возвратом его значения.
func (l *List[T]) PopFront() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, l.misuse(errors.Wrap(ErrEmptyContainer, "pop front"))
	}

	return l.drop(RefNone, l.head, l.node(l.head).link), nil
}

// Front первый элемент списка.
func (l *List[T]) Front() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, l.misuse(errors.Wrap(ErrEmptyContainer, "front"))
	}

	return l.node(l.head).value, nil
}

// Back последний элемент списка.
func (l *List[T]) Back() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, l.misuse(errors.Wrap(ErrEmptyContainer, "back"))
	}

	return l.node(l.tail).value, nil
}
