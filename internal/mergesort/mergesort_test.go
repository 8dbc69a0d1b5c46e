package mergesort

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sorter struct {
	name string
	sort func([]int, Less[int]) int64
}

var sorters = []sorter{
	{"recursive", Recursive[int]},
	{"iterative", Iterative[int]},
}

func intLess(a, b int) bool { return a < b }

func TestSortsMatchStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 3, 7, 64, 100, 1000, 1023} {
				in := make([]int, n)
				for i := range in {
					in[i] = rng.Intn(50)
				}
				want := make([]int, n)
				copy(want, in)
				sort.Ints(want)

				s.sort(in, intLess)
				assert.Equal(t, want, in, "n=%d", n)
			}
		})
	}
}

func TestComparisonCounts(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  int64
	}{
		{"empty", nil, 0},
		{"single", []int{1}, 0},
		{"pair", []int{2, 1}, 1},
		{"triple descending", []int{3, 2, 1}, 2},
		{"ascending", []int{1, 2, 3, 4}, 4},
		{"descending", []int{4, 3, 2, 1}, 4},
		{"interleaved", []int{1, 3, 2, 4}, 5},
	}

	for _, tt := range tests {
		for _, s := range sorters {
			t.Run(tt.name+"/"+s.name, func(t *testing.T) {
				in := append([]int(nil), tt.input...)
				assert.Equal(t, tt.want, s.sort(in, intLess))
			})
		}
	}
}

func TestComparisonsAreBoundedByNLogN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range []int{5, 10, 50, 250, 1000} {
				in := rng.Perm(n)
				got := s.sort(in, intLess)
				bound := int64(n) * int64(math.Ceil(math.Log2(float64(n))))
				assert.LessOrEqual(t, got, bound, "n=%d", n)
				assert.GreaterOrEqual(t, got, int64(n/2), "n=%d", n)
			}
		})
	}
}

func TestComparisonCountsWithEqualKeys(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		recursive int64
		iterative int64
	}{
		{"pair", []int{1, 1}, 1, 1},
		{"all equal", []int{0, 0, 0, 0, 0}, 5, 5},
		{"runs of duplicates", []int{5, 1, 1, 1, 2, 2}, 10, 10},
		{"equal head", []int{2, 2, 1}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]int(nil), tt.input...)
			assert.Equal(t, tt.recursive, Recursive(in, intLess), "recursive")

			in = append([]int(nil), tt.input...)
			assert.Equal(t, tt.iterative, Iterative(in, intLess), "iterative")
		})
	}
}

func TestEqualKeysTakeRightRun(t *testing.T) {
	type item struct {
		key, seq int
	}
	byKey := func(a, b item) bool { return a.key < b.key }

	for name, sortFn := range map[string]func([]item, Less[item]) int64{
		"recursive": Recursive[item],
		"iterative": Iterative[item],
	} {
		t.Run(name, func(t *testing.T) {
			s := []item{{key: 1, seq: 0}, {key: 1, seq: 1}}
			assert.Equal(t, int64(1), sortFn(s, byKey))
			assert.Equal(t, []item{{key: 1, seq: 1}, {key: 1, seq: 0}}, s)
		})
	}
}

func TestEqualKeysAreSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	in := make([]int, 300)
	for i := range in {
		in[i] = rng.Intn(4)
	}

	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			got := append([]int(nil), in...)
			s.sort(got, intLess)
			require.True(t, sort.IntsAreSorted(got))
		})
	}
}
