package quadmesh

import "container/heap"

// A priorityQueue pops the element ranked first by less.
type priorityQueue[T any] struct {
	h priorityHeap[T]
}

func newPriorityQueue[T any](less func(a, b T) bool) *priorityQueue[T] {
	return &priorityQueue[T]{h: priorityHeap[T]{less: less}}
}

func (p *priorityQueue[T]) Len() int {
	return len(p.h.items)
}

func (p *priorityQueue[T]) Push(x T) {
	heap.Push(&p.h, x)
}

func (p *priorityQueue[T]) Pop() T {
	return heap.Pop(&p.h).(T)
}

func (p *priorityQueue[T]) Peek() T {
	return p.h.items[0]
}

type priorityHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (p *priorityHeap[T]) Len() int {
	return len(p.items)
}

func (p *priorityHeap[T]) Less(i, j int) bool {
	return p.less(p.items[i], p.items[j])
}

func (p *priorityHeap[T]) Swap(i, j int) {
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

func (p *priorityHeap[T]) Push(x interface{}) {
	p.items = append(p.items, x.(T))
}

func (p *priorityHeap[T]) Pop() interface{} {
	n := len(p.items) - 1
	x := p.items[n]
	var zero T
	p.items[n] = zero
	p.items = p.items[:n]
	return x
}
