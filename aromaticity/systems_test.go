package aromaticity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvchem/cycles"
)

func TestGroupSystems(t *testing.T) {
	rings := []cycles.Ring{
		{10, 11, 12, 13, 14},     // 0: separate
		{0, 1, 2, 3, 4, 5},       // 1: shares 2,3 with ring 2
		{2, 3, 6, 7},             // 2
		{20, 21, 22},             // 3: separate
		{7, 8, 9},                // 4: spiro on atom 7 with ring 2
		{0, 1, 2, 6, 7, 3, 4, 5}, // 5: perimeter of 1+2
	}
	got := groupSystems(rings)
	assert.Equal(t, [][]int{{1, 2, 4, 5}, {0}, {3}}, got)
}

func TestGroupSystems_Empty(t *testing.T) {
	assert.Empty(t, groupSystems(nil))
}

func TestUniqueRings(t *testing.T) {
	rings := []cycles.Ring{
		{0, 1, 2},
		{1, 2, 0},
		{0, 2, 1},
		{0, 1},
		{3, 4, 5, 6},
	}
	got := uniqueRings(rings)
	assert.Equal(t, []cycles.Ring{{0, 1, 2}, {3, 4, 5, 6}}, got)
}
