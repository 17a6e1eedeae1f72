package queues_test

import (
	"eachcons/queues"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlidingQueue(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Negative limit", -1, 0},
		{"Zero limit", 0, 0},
		{"Limit 1", 1, 1},
		{"Limit 3 (non power of two)", 3, 3},
		{"Limit 8", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queues.NewSlidingQueue[int](tt.limit)
			assert.Equal(t, tt.want, q.Limit())
			assert.Equal(t, 0, q.Size())
			assert.True(t, q.IsEmpty())
		})
	}
}

func TestSlidingQueue_PushEvictsOldest(t *testing.T) {
	q := queues.NewSlidingQueue[int](3)

	for i := 1; i <= 3; i++ {
		_, evicted := q.Push(i)
		require.False(t, evicted, "push %d should not evict", i)
	}
	require.True(t, q.IsFull())
	require.Equal(t, []int{1, 2, 3}, q.AppendTo(nil))

	// Limit 3 sits on a buffer of 4, so pushes 4 and 5 exercise wrap-around.
	v, evicted := q.Push(4)
	require.True(t, evicted)
	require.Equal(t, 1, v)

	v, evicted = q.Push(5)
	require.True(t, evicted)
	require.Equal(t, 2, v)

	require.Equal(t, 3, q.Size())
	require.Equal(t, []int{3, 4, 5}, q.AppendTo(nil))

	head, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 3, head)
}

func TestSlidingQueue_LongRunOrder(t *testing.T) {
	q := queues.NewSlidingQueue[int](5)
	for i := 0; i < 100; i++ {
		q.Push(i)
		got := q.AppendTo(nil)
		lo := max(0, i-4)
		want := make([]int, 0, 5)
		for j := lo; j <= i; j++ {
			want = append(want, j)
		}
		require.Equal(t, want, got, "after push %d", i)
	}
}

func TestSlidingQueue_ZeroLimit(t *testing.T) {
	q := queues.NewSlidingQueue[string](0)

	v, evicted := q.Push("foo")
	assert.True(t, evicted)
	assert.Equal(t, "foo", v)
	assert.True(t, q.IsEmpty())
	assert.True(t, q.IsFull())
	assert.Empty(t, q.AppendTo(nil))

	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestSlidingQueue_AppendToKeepsPrefix(t *testing.T) {
	q := queues.NewSlidingQueue[int](2)
	q.Push(7)
	q.Push(8)

	dst := []int{1, 2}
	got := q.AppendTo(dst)
	assert.Equal(t, []int{1, 2, 7, 8}, got)
	// AppendTo must not consume the queue
	assert.Equal(t, 2, q.Size())
}

func TestSlidingQueue_Clear(t *testing.T) {
	q := queues.NewSlidingQueue[*int](2)
	a, b := 1, 2
	q.Push(&a)
	q.Push(&b)

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.AppendTo(nil))

	q.Push(&a)
	got, ok := q.Peek()
	require.True(t, ok)
	assert.Same(t, &a, got)
}

func TestSlidingQueue_GrowsTowardLimit(t *testing.T) {
	q := queues.NewSlidingQueue[int](100)

	// rotate the head first so growth has to unwrap a wrapped buffer
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	for i := 5; i < 150; i++ {
		q.Push(i)
		want := make([]int, 0, 100)
		for j := max(0, i-99); j <= i; j++ {
			want = append(want, j)
		}
		require.Equal(t, want, q.AppendTo(nil), "after push %d", i)
	}
	assert.True(t, q.IsFull())
	assert.Equal(t, 100, q.Size())
}

func TestSlidingQueue_HugeLimit(t *testing.T) {
	for _, limit := range []int{1 << 40, 1 << 62, math.MaxInt} {
		q := queues.NewSlidingQueue[int](limit)
		require.Equal(t, limit, q.Limit())

		for i := 0; i < 20; i++ {
			_, evicted := q.Push(i)
			require.False(t, evicted)
		}
		assert.Equal(t, 20, q.Size())
		assert.False(t, q.IsFull())

		head, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 0, head)
	}
}
