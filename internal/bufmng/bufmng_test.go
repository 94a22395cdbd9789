package bufmng

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func TestBufferManager(t *testing.T) {
	b := New[int]()

	buf := b.Get(4)
	if len(buf) != 4 {
		t.Errorf("buffer of length 4 expected, got %d", len(buf))
	}
	copy(buf, []int{1, 2, 3, 4})

	t.Run("reuse", func(t *testing.T) {
		short := b.Get(2)
		if !deepequal.Equal([]int{1, 2}, short) {
			t.Error("the same buffer was expected to be reused")
			deepequal.SideBySide(t, "buffer", []int{1, 2}, short)
		}
		if b.Cap() != 4 {
			t.Errorf("capacity 4 expected, got %d", b.Cap())
		}
	})

	t.Run("clean", func(t *testing.T) {
		b.Clean(10)
		got := b.Get(4)
		if !deepequal.Equal([]int{0, 0, 0, 0}, got) {
			t.Error("buffer must be zeroed")
			deepequal.SideBySide(t, "buffer", []int{0, 0, 0, 0}, got)
		}
	})

	t.Run("grow", func(t *testing.T) {
		got := b.Get(8)
		if len(got) != 8 || b.Cap() < 8 {
			t.Errorf("buffer of length 8 expected, got %d with capacity %d", len(got), b.Cap())
		}
	})
}
