package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopoSort_Chain(t *testing.T) {
	// 2 includes 1, 1 includes 0.
	order, stuck := topoSort([][]int{nil, {0}, {1}})
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Empty(t, stuck)
}

func TestTopoSort_SmallestReadyFirst(t *testing.T) {
	// 0 includes 3 and 1; 2 includes nothing.
	order, stuck := topoSort([][]int{{3, 1}, nil, nil, nil})
	assert.Equal(t, []int{1, 2, 3, 0}, order)
	assert.Empty(t, stuck)
}

func TestTopoSort_Diamond(t *testing.T) {
	// 0 includes 1 and 2, both include 3.
	order, stuck := topoSort([][]int{{1, 2}, {3}, {3}, nil})
	assert.Equal(t, []int{3, 1, 2, 0}, order)
	assert.Empty(t, stuck)
}

func TestTopoSort_Cycle(t *testing.T) {
	// 0 includes 1, 1 and 2 include each other, 3 is independent.
	order, stuck := topoSort([][]int{{1}, {2}, {1}, nil})
	assert.Equal(t, []int{3}, order)
	assert.Equal(t, []int{0, 1, 2}, stuck)
}

func TestTopoSort_Empty(t *testing.T) {
	order, stuck := topoSort(nil)
	assert.Empty(t, order)
	assert.Empty(t, stuck)
}
