package xorlist

import "github.com/sirkon/errors"

// chain цепочка узлов ещё не принадлежащая списку. Концы цепочки хранят
// в связи только своего соседа внутри неё.
type chain struct {
	first Ref
	last  Ref
	n     int
}

// allocate выдача узла со значением v. При отказе аллокатора
// ошибка всегда возвращается, политику применяет вызывающий.
func (l *List[T]) allocate(op string, v T) (Ref, error) {
	ref, err := l.alloc.Allocate()
	if err != nil {
		err = errors.Wrap(err, op).Int("list-size", l.count)
		l.log.ListAllocationFailed(l.id, err)
		return RefNone, err
	}

	n := l.node(ref)
	n.value = v
	n.link = RefNone
	return ref, nil
}

// build создание цепочки из n значений value(0), …, value(n-1).
// Либо выдаются все n узлов, либо ни одного.
func (l *List[T]) build(op string, n int, value func(i int) T) (chain, error) {
	var c chain
	for i := 0; i < n; i++ {
		ref, err := l.allocate(op, value(i))
		if err != nil {
			l.release(c)
			return chain{}, err
		}

		if c.last == RefNone {
			c.first = ref
		} else {
			last := l.node(c.last)
			last.link = combine(last.link, ref)
			l.node(ref).link = c.last
		}
		c.last = ref
		c.n++
	}

	return c, nil
}

// release освобождение цепочки не вошедшей в список.
func (l *List[T]) release(c chain) {
	var prev Ref
	cur := c.first
	for cur != RefNone {
		next := combine(prev, l.node(cur).link)
		l.alloc.Release(cur)
		prev, cur = cur, next
	}
}

// join вставка цепочки между соседними узлами left и right.
// left и right соседи в порядке обхода некоторого итератора: при обратном
// обходе цепочка встанет в список развёрнутой, так что обратный обход
// увидит её в порядке first…last. RefNone с одной из сторон означает
// вставку на соответствующий конец.
func (l *List[T]) join(left, right Ref, c chain) {
	if c.n == 0 {
		return
	}

	if left != RefNone {
		ln := l.node(left)
		ln.link = combine(combine(ln.link, right), c.first)
		fn := l.node(c.first)
		fn.link = combine(fn.link, left)
	}
	if right != RefNone {
		rn := l.node(right)
		rn.link = combine(combine(rn.link, left), c.last)
		tn := l.node(c.last)
		tn.link = combine(tn.link, right)
	}

	switch {
	case left == RefNone && right == RefNone:
		l.head, l.tail = c.first, c.last
	case left == RefNone:
		l.replaceFirst(right, c.first)
	case right == RefNone:
		l.replaceLast(left, c.last)
	}

	l.count += c.n
}

// drop удаление узла cur с соседями prev и next в порядке обхода.
// Возвращает значение удалённого узла.
func (l *List[T]) drop(prev, cur, next Ref) T {
	if prev != RefNone {
		pn := l.node(prev)
		pn.link = combine(combine(pn.link, cur), next)
	} else {
		l.replaceFirst(cur, next)
	}
	if next != RefNone {
		nn := l.node(next)
		nn.link = combine(combine(nn.link, cur), prev)
	} else {
		l.replaceLast(cur, prev)
	}

	v := l.node(cur).value
	l.alloc.Release(cur)
	l.count--
	return v
}

// replaceFirst замена концевого узла old на with, если old одновременно и
// голова и хвост, то заменяется голова.
func (l *List[T]) replaceFirst(old, with Ref) {
	if l.head == old {
		l.head = with
	} else {
		l.tail = with
	}
}

// replaceLast то же, что и replaceFirst, но при совпадении заменяется хвост.
func (l *List[T]) replaceLast(old, with Ref) {
	if l.tail == old {
		l.tail = with
	} else {
		l.head = with
	}
}

// junction поиск соседних узлов между которыми находится позиция index
// в прямом порядке: left имеет номер index-1, right номер index.
// Обход идёт с ближайшего конца.
func (l *List[T]) junction(index int) (left, right Ref) {
	if index <= l.count/2 {
		right = l.head
		for i := 0; i < index; i++ {
			left, right = right, combine(left, l.node(right).link)
		}

		return left, right
	}

	// Идём с хвоста: prev в этом обходе лежит правее cur.
	var prev Ref
	cur := l.tail
	for i := 0; i < l.count-index; i++ {
		prev, cur = cur, combine(prev, l.node(cur).link)
	}

	return cur, prev
}
