package xorlist

import "github.com/sirkon/errors"

const poolChunkSize = 256

var _ Allocator[int] = &Pool[int]{}

// NewPool конструктор аллокатора узлов. При limit <= 0 число
// одновременно выданных узлов не ограничено.
func NewPool[T any](limit int) *Pool[T] {
	if limit < 0 {
		limit = 0
	}

	return &Pool[T]{
		next:  1,
		limit: limit,
	}
}

// Pool аллокатор по умолчанию: узлы живут в блоках фиксированного размера,
// которые никогда не переаллоцируются, поэтому адреса узлов стабильны.
// Освобождённые ссылки переиспользуются в порядке LIFO.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Pool[T any] struct {
	chunks [][]Node[T]
	free   []Ref
	next   Ref
	used   int
	limit  int
}

// Allocate для реализации Allocator.
func (p *Pool[T]) Allocate() (Ref, error) {
	if p.limit > 0 && p.used >= p.limit {
		return RefNone, errors.Wrap(ErrAllocationFailure, "pool limit reached").Int("pool-limit", p.limit)
	}

	var ref Ref
	if n := len(p.free); n > 0 {
		ref = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		ref = p.next
		p.next++
		if int(ref/poolChunkSize) == len(p.chunks) {
			p.chunks = append(p.chunks, make([]Node[T], poolChunkSize))
		}
	}

	p.used++
	return ref, nil
}

// Release для реализации Allocator.
func (p *Pool[T]) Release(ref Ref) {
	if ref == RefNone {
		return
	}

	p.Node(ref).cleanup()
	p.free = append(p.free, ref)
	p.used--
}

// Node для реализации Allocator.
func (p *Pool[T]) Node(ref Ref) *Node[T] {
	return &p.chunks[ref/poolChunkSize][ref%poolChunkSize]
}

// Limit для реализации Allocator.
func (p *Pool[T]) Limit() int {
	return p.limit
}

// Len число выданных и ещё не освобождённых узлов.
func (p *Pool[T]) Len() int {
	return p.used
}
