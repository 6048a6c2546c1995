package garble_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/garble-go/pkg/garble"
)

func TestSet(t *testing.T) {
	t.Run("passthrough keeps members", func(t *testing.T) {
		s := garble.NewSet(uint32(1), 2, 3)
		got := garble.Value(s, passGarbler{})
		require.Equal(t, 3, got.Len())
		for _, v := range []uint32{1, 2, 3} {
			assert.True(t, got.Has(v), "missing %d", v)
		}
	})

	t.Run("collisions shrink cardinality", func(t *testing.T) {
		s := garble.NewSet(uint32(1), 2, 3)
		got := garble.Value(s, zeroGarbler{})
		require.Equal(t, 1, got.Len())
		assert.True(t, got.Has(0))
	})

	t.Run("cardinality bound under random garbling", func(t *testing.T) {
		s := garble.NewSet("a", "b", "c", "d")
		g := garble.NewSeededSimpleGarbler(0.5, 77)
		for i := 0; i < 64; i++ {
			got := garble.Value(s, g)
			require.LessOrEqual(t, got.Len(), s.Len())
		}
	})

	t.Run("nil set", func(t *testing.T) {
		var s garble.Set[int]
		got := garble.Value(s, zeroGarbler{})
		assert.Nil(t, got)
	})
}

func TestDeque(t *testing.T) {
	t.Run("push and pop", func(t *testing.T) {
		var d garble.Deque[int]
		d.PushBack(2)
		d.PushBack(3)
		d.PushFront(1)

		require.Equal(t, 3, d.Len())
		assert.Equal(t, 1, d.At(0))

		v, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = d.PopBack()
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("pop empty", func(t *testing.T) {
		var d garble.Deque[int]
		_, ok := d.PopFront()
		assert.False(t, ok)
		_, ok = d.PopBack()
		assert.False(t, ok)
	})

	t.Run("garble preserves order and length", func(t *testing.T) {
		d := garble.NewDeque(uint32(10), 20, 30)
		got := garble.Value(d, zeroGarbler{})
		require.Equal(t, 3, got.Len())
		for i := 0; i < got.Len(); i++ {
			assert.Equal(t, uint32(0), got.At(i))
		}

		kept := garble.Value(d, passGarbler{})
		require.Equal(t, 3, kept.Len())
		assert.Equal(t, uint32(10), kept.At(0))
		assert.Equal(t, uint32(20), kept.At(1))
		assert.Equal(t, uint32(30), kept.At(2))
	})
}

func TestList(t *testing.T) {
	t.Run("push order", func(t *testing.T) {
		l := garble.NewList(2, 3)
		l.PushFront(1)
		l.PushBack(4)

		assert.Equal(t, []int{1, 2, 3, 4}, l.Values())
		require.Equal(t, 4, l.Len())

		front, ok := l.Front()
		require.True(t, ok)
		assert.Equal(t, 1, front)

		back, ok := l.Back()
		require.True(t, ok)
		assert.Equal(t, 4, back)
	})

	t.Run("empty list", func(t *testing.T) {
		l := garble.NewList[string]()
		_, ok := l.Front()
		assert.False(t, ok)
		_, ok = l.Back()
		assert.False(t, ok)
		assert.Empty(t, l.Values())
	})

	t.Run("garble preserves order and length", func(t *testing.T) {
		l := garble.NewList(uint8(10), 20, 30)
		got := garble.Value(l, zeroGarbler{})
		assert.Equal(t, []uint8{0, 0, 0}, got.Values())

		kept := garble.Value(l, passGarbler{})
		assert.Equal(t, []uint8{10, 20, 30}, kept.Values())

		// Fresh list, not an aliased one.
		kept.PushBack(40)
		assert.Equal(t, 3, l.Len())
	})
}

func TestHeap(t *testing.T) {
	intLess := func(a, b int) bool { return a < b }

	t.Run("pop order", func(t *testing.T) {
		h := garble.NewHeap(intLess, 5, 1, 4, 2, 3)
		var got []int
		for {
			v, ok := h.Pop()
			if !ok {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("push reorders", func(t *testing.T) {
		h := garble.NewHeap(intLess, 3)
		h.Push(1)
		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, top)
	})

	t.Run("garble keeps count and ordering invariant", func(t *testing.T) {
		h := garble.NewHeap(intLess, 30, 10, 20)
		got := garble.Value(h, garble.NewSeededSimpleGarbler(1.0, 13))
		require.Equal(t, 3, got.Len())

		var drained []int
		for {
			v, ok := got.Pop()
			if !ok {
				break
			}
			drained = append(drained, v)
		}
		assert.True(t, sort.IntsAreSorted(drained), "heap order violated: %v", drained)
	})

	t.Run("garble with zero strategy", func(t *testing.T) {
		h := garble.NewHeap(intLess, 3, 1, 2)
		got := garble.Value(h, zeroGarbler{})
		require.Equal(t, 3, got.Len())
		for {
			v, ok := got.Pop()
			if !ok {
				break
			}
			assert.Equal(t, 0, v)
		}
	})
}
