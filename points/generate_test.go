package points_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/points"
)

// TestGenerate_UniqueWithinBounds checks the uniqueness invariant and bounds
// across several seeds and sizes.
func TestGenerate_UniqueWithinBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		n             int
		width, height uint32
	}{
		{"empty", 0, 10, 10},
		{"single", 1, 1, 1},
		{"demo", 10, 430, 600},
		{"dense", 20, 5, 5},
		{"full grid", 16, 4, 4},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for seed := int64(0); seed < 5; seed++ {
				set, err := points.Generate(tc.n, tc.width, tc.height, points.WithSeed(seed))
				require.NoError(t, err)
				require.Equal(t, tc.n, set.Len())
				require.NoError(t, set.Validate())
				for id, p := range set {
					require.Less(t, int(id), tc.n)
					require.Less(t, p.X, tc.width)
					require.Less(t, p.Y, tc.height)
				}
			}
		})
	}
}

func TestGenerate_FullGridCoversEveryCell(t *testing.T) {
	t.Parallel()

	set, err := points.Generate(9, 3, 3, points.WithSeed(11))
	require.NoError(t, err)

	seen := make(map[points.Point]bool)
	for _, p := range set {
		seen[p] = true
	}
	require.Len(t, seen, 9)
}

func TestGenerate_Preconditions(t *testing.T) {
	t.Parallel()

	_, err := points.Generate(-1, 10, 10)
	require.ErrorIs(t, err, points.ErrInvalidCount)

	_, err = points.Generate(points.MaxCities+1, 1000, 1000)
	require.ErrorIs(t, err, points.ErrInvalidCount)

	_, err = points.Generate(5, 2, 2)
	require.ErrorIs(t, err, points.ErrBoundsTooSmall)

	_, err = points.Generate(1, 0, 10)
	require.ErrorIs(t, err, points.ErrBoundsTooSmall)

	set, err := points.Generate(0, 0, 0)
	require.NoError(t, err)
	require.Zero(t, set.Len())
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	t.Parallel()

	a, err := points.Generate(12, 100, 100, points.WithSeed(42))
	require.NoError(t, err)
	b, err := points.Generate(12, 100, 100, points.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// seed 0 and no option both use the default stream.
	c, err := points.Generate(12, 100, 100, points.WithSeed(0))
	require.NoError(t, err)
	d, err := points.Generate(12, 100, 100)
	require.NoError(t, err)
	require.Equal(t, c, d)
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { points.WithRand(nil) })
}

func TestSet_Validate(t *testing.T) {
	t.Parallel()

	dup := points.Set{0: {X: 1, Y: 1}, 1: {X: 1, Y: 1}}
	require.ErrorIs(t, dup.Validate(), points.ErrDuplicatePoint)

	sparse := points.Set{0: {X: 1, Y: 1}, 2: {X: 2, Y: 2}}
	require.ErrorIs(t, sparse.Validate(), points.ErrSparseIDs)

	ok := points.Set{1: {X: 0, Y: 5}, 0: {X: 5, Y: 0}}
	require.NoError(t, ok.Validate())
	require.Equal(t, []points.City{0, 1}, ok.Sorted())
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	set, err := points.FromSlice([]points.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)
	require.Equal(t, points.Point{X: 10, Y: 0}, set[1])

	_, err = points.FromSlice([]points.Point{{X: 3, Y: 3}, {X: 3, Y: 3}})
	require.ErrorIs(t, err, points.ErrDuplicatePoint)
}
