package tree

import (
	"io"
	"sync"
	"testing"

	antsv2 "github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xavl/xlog"
)

func TestThreadSafeAVLMap(t *testing.T) {
	m := NewThreadSafeAVLMap[int, string]()
	for _, k := range lo.Range(10) {
		m.Add(k, "v")
	}
	require.Equal(t, int64(10), m.Len())
	require.False(t, m.Desc())
	require.Equal(t, 3, m.Root().Key())

	x := m.Find(5)
	require.Equal(t, 5, x.Key())
	// Snapshots are detached.
	require.Nil(t, x.Parent())
	require.Nil(t, x.Left())
	require.Nil(t, m.Find(42))

	require.Equal(t, 6, m.Next(x).Key())
	require.Equal(t, 4, m.Prev(x).Key())
	require.Nil(t, m.Next(m.Maximum()))
	require.Nil(t, m.Prev(m.Minimum()))
	require.Nil(t, m.Next(nil))

	m.Insert(5, "updated")
	val, ok := m.Get(5)
	require.True(t, ok)
	require.Equal(t, "updated", val)
	require.Equal(t, "v", x.Val())

	x, ok = m.Remove(5)
	require.True(t, ok)
	require.Equal(t, "updated", x.Val())
	require.Nil(t, m.Next(x))
	require.False(t, m.Contains(5))

	x, ok = m.RemoveMin()
	require.True(t, ok)
	require.Equal(t, 0, x.Key())
	x, ok = m.RemoveMax()
	require.True(t, ok)
	require.Equal(t, 9, x.Key())

	keys, err := m.Keys(InOrder)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 6, 7, 8}, keys)
	require.Len(t, m.Values(), 7)
	_, err = m.Keys(AVLTraversalOrder("zigzag"))
	require.ErrorIs(t, err, ErrAVLInvalidArgument)

	count := 0
	m.Foreach(func(idx int64, key int, val string) bool {
		count++
		return true
	})
	require.Equal(t, 7, count)

	height, err := m.Print(io.Discard, true)
	require.NoError(t, err)
	require.Equal(t, 4, height)
	require.NoError(t, AVLValidate[int, string](m))

	m.Release()
	require.Equal(t, int64(0), m.Len())
	require.Nil(t, m.Minimum())
	require.Nil(t, m.Maximum())
}

func TestThreadSafeAVLMap_AntsPool(t *testing.T) {
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelInfo),
		xlog.WithXLoggerWriter(io.Discard),
	)
	p, err := antsv2.NewPool(16, antsv2.WithLogger(xlog.NewAntsXLogger(logger)))
	require.NoError(t, err)
	defer p.Release()

	const (
		writers = 8
		perTask = 500
	)
	m := NewThreadSafeAVLMap[int, int](WithAVLTreeLogger[int, int](logger))

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)
		base := w * perTask
		err = p.Submit(func() {
			defer wg.Done()
			for _, k := range lo.Shuffle(lo.Range(perTask)) {
				m.Add(base+k, base+k)
			}
		})
		require.NoError(t, err)
		err = p.Submit(func() {
			defer wg.Done()
			for i := 0; i < perTask; i++ {
				if x := m.Minimum(); x != nil {
					_ = m.Next(x)
				}
				_, _ = m.Get(base + i)
				_, _ = m.Keys(BreadthFirst)
			}
		})
		require.NoError(t, err)
	}
	wg.Wait()

	require.Equal(t, int64(writers*perTask), m.Len())
	keys, err := m.Keys(InOrder)
	require.NoError(t, err)
	require.Equal(t, lo.Range(writers*perTask), keys)
	require.NoError(t, AVLValidate[int, int](m))

	// Drain the lower half concurrently.
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		err = p.Submit(func() {
			defer wg.Done()
			for i := 0; i < perTask/2; i++ {
				_, _ = m.RemoveMin()
			}
		})
		require.NoError(t, err)
	}
	wg.Wait()
	require.Equal(t, int64(writers*perTask/2), m.Len())
	require.Equal(t, writers*perTask/2, m.Minimum().Key())
	require.NoError(t, AVLValidate[int, int](m))
}
