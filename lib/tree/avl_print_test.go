package tree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failedWriter struct{}

func (failedWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestAVLTree_Print(t *testing.T) {
	m := NewAVLMap[int, string]()
	m.Add(1, "a")
	m.Add(2, "b")
	m.Add(3, "c")

	buf := &bytes.Buffer{}
	height, err := m.Print(buf, false)
	require.NoError(t, err)
	require.Equal(t, 2, height)
	require.Equal(t, ""+
		"       /------+ 3 ^2 h=1 b=+0\n"+
		"|------+ 2 ^<nil> h=2 b=+0\n"+
		"       \\------+ 1 ^2 h=1 b=+0\n",
		buf.String(),
	)

	buf.Reset()
	height, err = m.Print(buf, true)
	require.NoError(t, err)
	require.Equal(t, 2, height)
	require.Contains(t, buf.String(), "2 → b ^<nil>")
	require.Contains(t, buf.String(), "3 → c ^2")

	m.Add(4, "d")
	buf.Reset()
	height, err = m.Print(buf, false)
	require.NoError(t, err)
	require.Equal(t, 3, height)
	require.Equal(t, ""+
		"              /------+ 4 ^3 h=1 b=+0\n"+
		"       /------+ 3 ^2 h=2 b=-1\n"+
		"|------+ 2 ^<nil> h=3 b=-1\n"+
		"       \\------+ 1 ^2 h=1 b=+0\n",
		buf.String(),
	)
}

func TestAVLTree_PrintWriteErrors(t *testing.T) {
	m := NewAVLMap[int, int]()
	for i := 0; i < 3; i++ {
		m.Add(i, i)
	}
	height, err := m.Print(failedWriter{}, false)
	require.Equal(t, 2, height)
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 3)
}
