package xorlist

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/sirkon/xorlist/internal/mocks"
	"github.com/sirkon/xorlist/internal/tlog"
)

func TestLogger(t *testing.T) {
	t.Run("no logger", func(t *testing.T) {
		if New[int]().ID() != uuid.Nil {
			t.Error("list without a logger must not have an id")
		}
	})

	t.Run("misuse ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewLoggerMock(ctrl)
		l := New[int](WithPolicy(PolicyUnchecked), WithLogger(log))
		if l.ID() == uuid.Nil {
			t.Error("list with a logger must have an id")
		}

		log.EXPECT().ListMisuseIgnored(l.ID(), gomock.Any()).Do(func(_ uuid.UUID, err error) {
			tlog.Expect(t, err, ErrEmptyContainer)
		})
		log.EXPECT().ListMisuseIgnored(l.ID(), gomock.Any()).Do(func(_ uuid.UUID, err error) {
			tlog.Expect(t, err, ErrOutOfRange)
		})

		if _, err := l.PopFront(); err != nil {
			tlog.Error(t, err)
		}
		if err := l.InsertAt(3, 1); err != nil {
			tlog.Error(t, err)
		}
	})

	t.Run("checked misuse is not logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewLoggerMock(ctrl)
		l := New[int](WithLogger(log))

		_, err := l.Back()
		tlog.Expect(t, err, ErrEmptyContainer)
	})

	t.Run("allocation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewLoggerMock(ctrl)
		l := NewIn[int](NewPool[int](1), WithLogger(log))
		_ = l.PushBack(1)

		log.EXPECT().ListAllocationFailed(l.ID(), gomock.Any()).Do(func(_ uuid.UUID, err error) {
			tlog.Expect(t, err, ErrAllocationFailure)
		})

		tlog.Expect(t, l.PushBack(2), ErrAllocationFailure)
		checkList(t, l, []int{1})
	})

	t.Run("clone keeps logger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewLoggerMock(ctrl)
		l := New[int](WithPolicy(PolicyUnchecked), WithLogger(log))
		c, err := l.Clone()
		if err != nil {
			tlog.Error(t, err)
			return
		}
		if c.ID() == uuid.Nil || c.ID() == l.ID() {
			t.Error("clone must get its own id")
		}

		log.EXPECT().ListMisuseIgnored(c.ID(), gomock.Any())
		_, _ = c.Front()
	})
}
