package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedKeyComparator(t *testing.T) {
	testcases := []struct {
		name string
		i, j int
		asc  int64
	}{
		{"equal", 3, 3, 0},
		{"less", 1, 3, -1},
		{"greater", 7, 3, 1},
		{"negative", -7, -3, -1},
	}
	asc := NewOrderedKeyComparator[int](false)
	desc := NewOrderedKeyComparator[int](true)
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.asc, asc(tc.i, tc.j))
			require.Equal(tt, -tc.asc, desc(tc.i, tc.j))
		})
	}
}

func TestOrderedKeyComparator_String(t *testing.T) {
	cmp := NewOrderedKeyComparator[string](false)
	assert.Equal(t, int64(-1), cmp("abc", "abd"))
	assert.Equal(t, int64(1), cmp("b", "abc"))
	assert.Equal(t, int64(0), cmp("", ""))
}

type celsius float64

func TestOrderedKeyComparator_DerivedFloat(t *testing.T) {
	cmp := NewOrderedKeyComparator[celsius](false)
	assert.Equal(t, int64(-1), cmp(-273.15, 0))
	assert.Equal(t, int64(1), cmp(celsius(math.Inf(1)), 1e300))
}
