package xorlist

import (
	"math"

	"github.com/google/uuid"

	"github.com/sirkon/xorlist/internal/bufmng"
)

// New конструктор пустого списка со своим собственным Pool.
func New[T comparable](opts ...Option) *List[T] {
	return NewIn[T](NewPool[T](0), opts...)
}

// NewIn конструктор пустого списка на данном аллокаторе. Списки на одном
// аллокаторе переносят узлы друг в друга без копирования (Splice, Merge, MoveFrom).
func NewIn[T comparable](alloc Allocator[T], opts ...Option) *List[T] {
	return newList(alloc, newConfig(opts))
}

// Fill конструктор списка из n копий значения v.
func Fill[T comparable](n int, v T, opts ...Option) *List[T] {
	l := New[T](opts...)
	_ = l.Assign(n, v) // неограниченный Pool не отказывает в узлах
	return l
}

// Make конструктор списка из n нулевых значений.
func Make[T comparable](n int, opts ...Option) *List[T] {
	var zero T
	return Fill(n, zero, opts...)
}

// FromSlice конструктор списка из значений среза в том же порядке.
func FromSlice[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](opts...)
	_ = l.AssignSlice(values)
	return l
}

// Of конструктор списка из перечисленных значений.
func Of[T comparable](values ...T) *List[T] {
	return FromSlice(values)
}

// FromRange конструктор списка из значений полуинтервала [first, last)
// другого списка.
func FromRange[T comparable](first, last Iterator[T], opts ...Option) *List[T] {
	return FromSlice(rangeValues(first, last), opts...)
}

func newList[T comparable](alloc Allocator[T], c config) *List[T] {
	l := &List[T]{
		alloc:  alloc,
		policy: c.policy,
		log:    c.log,
	}
	if l.log == nil {
		l.log = nopLogger{}
	} else {
		l.id = uuid.New()
	}

	return l
}

// List двусвязный список, в узлах которого вместо двух ссылок на соседей
// хранится одна: combine(prev, next).
//
// Инварианты:
//   - head == RefNone тогда и только тогда, когда tail == RefNone и count == 0;
//   - обход от head с предыдущим RefNone доходит до tail ровно за count шагов,
//     так же и обход от tail до head.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	head  Ref
	tail  Ref
	count int

	alloc  Allocator[T]
	policy Policy
	log    Logger
	id     uuid.UUID
	buf    bufmng.BufferManager[T]
}

// ID идентификатор списка для логирования. uuid.Nil если логгер не задан.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

// Allocator аллокатор узлов списка.
func (l *List[T]) Allocator() Allocator[T] {
	return l.alloc
}

// Policy политика обработки ошибок списка.
func (l *List[T]) Policy() Policy {
	return l.policy
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Len число элементов списка.
func (l *List[T]) Len() int {
	return l.count
}

// MaxLen максимально возможное число элементов.
func (l *List[T]) MaxLen() int {
	if limit := l.alloc.Limit(); limit > 0 {
		return limit
	}

	return math.MaxInt
}

// Clone глубокая копия списка на том же аллокаторе, с той же политикой и логгером.
// Отказ аллокатора возвращается при любой политике: копии без узлов не бывает.
func (l *List[T]) Clone() (*List[T], error) {
	c := newList(l.alloc, config{policy: l.policy, log: l.logger()})
	values := l.Values()
	chain, err := c.build("clone", len(values), func(i int) T { return values[i] })
	if err != nil {
		return nil, err
	}

	c.join(RefNone, RefNone, chain)
	return c, nil
}

// Move перенос содержимого в новый список за O(1). Исходный список становится пустым.
func (l *List[T]) Move() *List[T] {
	m := newList(l.alloc, config{policy: l.policy, log: l.logger()})
	m.head, m.tail, m.count = l.head, l.tail, l.count
	l.reset()
	return m
}

// CopyFrom замена содержимого копией other. Присваивание самому себе ничего не делает.
func (l *List[T]) CopyFrom(other *List[T]) error {
	if l == other {
		return nil
	}

	return l.AssignSlice(other.Values())
}

// MoveFrom замена содержимого узлами other, other становится пустым.
// Если списки на разных аллокаторах, то значения копируются. При отказе
// аллокатора оба списка остаются прежними.
func (l *List[T]) MoveFrom(other *List[T]) error {
	if l == other {
		return nil
	}

	if l.alloc != other.alloc {
		values := other.Values()
		chain, err := l.build("move from", len(values), func(i int) T { return values[i] })
		if err != nil {
			return l.fail(err)
		}

		other.Clear()
		l.Clear()
		l.join(RefNone, RefNone, chain)
		return nil
	}

	l.Clear()
	l.head, l.tail, l.count = other.head, other.tail, other.count
	other.reset()
	return nil
}

// Assign замена содержимого n копиями v.
func (l *List[T]) Assign(n int, v T) error {
	return l.assign("assign", n, func(int) T { return v })
}

// AssignSlice замена содержимого значениями среза.
func (l *List[T]) AssignSlice(values []T) error {
	return l.assign("assign slice", len(values), func(i int) T { return values[i] })
}

// assign новая цепочка строится до освобождения старых узлов: при отказе
// аллокатора содержимое остаётся прежним.
func (l *List[T]) assign(op string, n int, value func(int) T) error {
	if n <= 0 {
		l.Clear()
		return nil
	}

	c, err := l.build(op, n, value)
	if err != nil {
		return l.fail(err)
	}

	l.Clear()
	l.join(RefNone, RefNone, c)
	return nil
}

// AssignRange замена содержимого значениями полуинтервала [first, last).
// Интервал может принадлежать этому же списку.
func (l *List[T]) AssignRange(first, last Iterator[T]) error {
	return l.AssignSlice(rangeValues(first, last))
}

// Clear освобождение всех узлов за один обход.
func (l *List[T]) Clear() {
	var prev Ref
	cur := l.head
	for cur != RefNone {
		next := combine(prev, l.node(cur).link)
		l.alloc.Release(cur)
		prev, cur = cur, next
	}

	l.reset()
}

// Equal поэлементное сравнение в порядке обхода.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.count != other.count {
		return false
	}

	a, b := l.Begin(), other.Begin()
	for !a.AtEnd() && !b.AtEnd() {
		if a.node().value != b.node().value {
			return false
		}

		a.Next()
		b.Next()
	}

	return a.AtEnd() && b.AtEnd()
}

// Values значения списка в порядке обхода.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.count)
	for it := l.Begin(); !it.AtEnd(); it.Next() {
		res = append(res, it.node().value)
	}

	return res
}

func (l *List[T]) node(ref Ref) *Node[T] {
	return l.alloc.Node(ref)
}

func (l *List[T]) reset() {
	l.head = RefNone
	l.tail = RefNone
	l.count = 0
}

func (l *List[T]) logger() Logger {
	if _, ok := l.log.(nopLogger); ok {
		return nil
	}

	return l.log
}

// fail обработка отказа аллокатора согласно политике.
func (l *List[T]) fail(err error) error {
	if l.policy == PolicyChecked {
		return err
	}

	return nil
}

// misuse обработка некорректного использования согласно политике.
func (l *List[T]) misuse(err error) error {
	if l.policy == PolicyChecked {
		return err
	}

	l.log.ListMisuseIgnored(l.id, err)
	return nil
}

func rangeValues[T comparable](first, last Iterator[T]) []T {
	var res []T
	for it := first; !it.AtEnd() && !it.Equal(last); it.Next() {
		res = append(res, it.node().value)
	}

	return res
}
