package deps

import (
	"container/heap"
	"errors"
)

// ErrCycle is returned by Graph.Order when the include graph is not acyclic.
var ErrCycle = errors.New("cycle detected")

// readyQueue is a min-heap of node indices.
type readyQueue []int

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q readyQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *readyQueue) Push(x any)        { *q = append(*q, x.(int)) }

func (q *readyQueue) Pop() any {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]

	return x
}

// topoSort orders the nodes 0..len(children)-1 so that every node comes after
// all of children[i]. Among nodes whose children are all placed, the smallest
// index goes first.
//
// Nodes that can never be placed because they sit on or above a cycle are
// returned in stuck, in index order.
func topoSort(children [][]int) (order, stuck []int) {
	n := len(children)
	pending := make([]int, n)
	parents := make([][]int, n)

	for i, cs := range children {
		pending[i] = len(cs)
		for _, c := range cs {
			parents[c] = append(parents[c], i)
		}
	}

	q := &readyQueue{}

	for i := range n {
		if pending[i] == 0 {
			heap.Push(q, i)
		}
	}

	order = make([]int, 0, n)

	for q.Len() > 0 {
		i := heap.Pop(q).(int)
		order = append(order, i)

		for _, p := range parents[i] {
			pending[p]--
			if pending[p] == 0 {
				heap.Push(q, p)
			}
		}
	}

	for i := range n {
		if pending[i] > 0 {
			stuck = append(stuck, i)
		}
	}

	return order, stuck
}
