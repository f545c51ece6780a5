package random

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	sel := NewSelector(42)

	for run := 0; run < 50; run++ {
		in := []int{1, 2, 2, 3, 5, 8, 13, 21, 34}
		want := append([]int(nil), in...)

		out := Shuffle(sel, in)

		require.Len(t, out, len(want))
		got := append([]int(nil), out...)
		sort.Ints(got)
		sort.Ints(want)
		assert.Equal(t, want, got, "run %d", run)
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	sel := NewSelector(1)

	assert.Empty(t, Shuffle(sel, []string{}))
	assert.Equal(t, []string{"go"}, Shuffle(sel, []string{"go"}))
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	items := func() []string { return []string{"be", "have", "do", "go", "say", "get"} }

	a := Shuffle(NewSelector(7), items())
	b := Shuffle(NewSelector(7), items())

	assert.Equal(t, a, b)
}

func TestSample(t *testing.T) {
	pool := make([]string, 30)
	for i := range pool {
		pool[i] = fmt.Sprintf("verb%02d", i)
	}

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "fewer than pool", n: 10, wantLen: 10},
		{name: "exactly pool", n: 30, wantLen: 30},
		{name: "more than pool", n: 45, wantLen: 30},
		{name: "zero", n: 0, wantLen: 0},
		{name: "negative", n: -3, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]string(nil), pool...)
			got := Sample(NewSelector(99), pool, tt.n)

			require.Len(t, got, tt.wantLen)
			seen := map[string]bool{}
			for _, g := range got {
				assert.False(t, seen[g], "duplicate %q", g)
				seen[g] = true
				assert.Contains(t, pool, g)
			}
			assert.Equal(t, original, pool, "input must not be modified")
		})
	}
}

func TestPick(t *testing.T) {
	sel := NewSelector(3)

	_, ok := Pick(sel, []int{})
	assert.False(t, ok)

	v, ok := Pick(sel, []int{4, 5, 6})
	require.True(t, ok)
	assert.Contains(t, []int{4, 5, 6}, v)
}

func TestChooseDistractors(t *testing.T) {
	tests := []struct {
		name    string
		pool    []string
		correct string
		count   int
		wantLen int
	}{
		{
			name:    "enough distinct candidates",
			pool:    []string{"go", "went", "say", "do", "make", "take"},
			correct: "go",
			count:   3,
			wantLen: 3,
		},
		{
			name:    "homogeneous pool terminates",
			pool:    []string{"will go", "will go", "will go", "will go"},
			correct: "will go",
			count:   3,
			wantLen: 0,
		},
		{
			name:    "duplicates collapse",
			pool:    []string{"put", "put", "let", "let", "go"},
			correct: "go",
			count:   3,
			wantLen: 2,
		},
		{
			name:    "empty pool",
			pool:    nil,
			correct: "go",
			count:   3,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseDistractors(NewSelector(5), tt.pool, tt.correct, tt.count)

			require.Len(t, got, tt.wantLen)
			seen := map[string]bool{}
			for _, g := range got {
				assert.NotEqual(t, tt.correct, g)
				assert.False(t, seen[g], "duplicate distractor %q", g)
				seen[g] = true
			}
		})
	}
}

func TestNewRandomSelector(t *testing.T) {
	sel, err := NewRandomSelector()
	require.NoError(t, err)

	n := sel.Intn(10)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 10)
}
