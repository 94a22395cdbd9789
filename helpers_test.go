package xorlist

import (
	"testing"

	"github.com/sirkon/deepequal"
)

// checkInvariants обход сырых связей в обе стороны: оба обхода должны пройти
// ровно count узлов, закончиться на противоположном конце и дать
// зеркальные последовательности.
func checkInvariants[T comparable](t *testing.T, l *List[T]) bool {
	t.Helper()

	if (l.head == RefNone) != (l.tail == RefNone) || (l.head == RefNone) != (l.count == 0) {
		t.Errorf("inconsistent ends: head=%d tail=%d count=%d", l.head, l.tail, l.count)
		return false
	}

	forward, ok := walk(l, l.head)
	if !ok {
		t.Errorf("forward traversal does not terminate within %d steps", l.count)
		return false
	}
	backward, ok := walk(l, l.tail)
	if !ok {
		t.Errorf("backward traversal does not terminate within %d steps", l.count)
		return false
	}

	if len(forward) != l.count || len(backward) != l.count {
		t.Errorf("count %d, forward traversal %d, backward traversal %d", l.count, len(forward), len(backward))
		return false
	}

	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Errorf("traversals diverge at position %d", i)
			return false
		}
	}

	return true
}

func walk[T comparable](l *List[T], from Ref) ([]Ref, bool) {
	var res []Ref
	var prev Ref
	cur := from
	for cur != RefNone {
		if len(res) > l.count {
			return nil, false
		}

		res = append(res, cur)
		prev, cur = cur, combine(prev, l.node(cur).link)
	}

	return res, true
}

// checkList проверка инвариантов и содержимого.
func checkList[T comparable](t *testing.T, l *List[T], expected []T) {
	t.Helper()

	if !checkInvariants(t, l) {
		return
	}

	got := l.Values()
	if len(expected) == 0 && len(got) == 0 {
		return
	}

	if !deepequal.Equal(expected, got) {
		t.Error("list content mismatch")
		deepequal.SideBySide(t, "values", expected, got)
	}
}

func reversed[T any](values []T) []T {
	res := make([]T, len(values))
	for i, v := range values {
		res[len(values)-1-i] = v
	}

	return res
}

func backwardValues[T comparable](l *List[T]) []T {
	var res []T
	for it := l.RBegin(); !it.AtEnd(); it.Next() {
		res = append(res, it.Value())
	}

	return res
}
