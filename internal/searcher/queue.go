package searcher

// Queue is a bounded binary heap holding the best ScoredIndex values seen
// so far. The worst retained item sits at the top so it can be evicted in
// O(log k). It does NOT implement container/heap to avoid interface overhead.
type Queue struct {
	capacity int
	items    []ScoredIndex
}

// NewQueue creates a queue that retains at most capacity items.
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{
		capacity: capacity,
		items:    make([]ScoredIndex, 0, capacity),
	}
}

// Len returns the number of retained items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Push offers an item. If the queue is full and the item ranks below the
// worst retained item, it is dropped; otherwise the worst item is replaced.
func (q *Queue) Push(item ScoredIndex) {
	if q.capacity == 0 {
		return
	}
	if len(q.items) < q.capacity {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return
	}
	if Better(item, q.items[0]) {
		q.items[0] = item
		q.siftDown(0)
	}
}

// Pop removes and returns the lowest-ranked item.
func (q *Queue) Pop() (ScoredIndex, bool) {
	n := len(q.items)
	if n == 0 {
		return ScoredIndex{}, false
	}

	item := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]

	if len(q.items) > 0 {
		q.siftDown(0)
	}
	return item, true
}

// Drain empties the queue into dst ordered best first and returns it.
func (q *Queue) Drain(dst []ScoredIndex) []ScoredIndex {
	n := len(q.items)
	start := len(dst)
	dst = append(dst, make([]ScoredIndex, n)...)
	for i := n - 1; i >= 0; i-- {
		item, _ := q.Pop()
		dst[start+i] = item
	}
	return dst
}

// less orders the heap so the worst item is at index 0.
func (q *Queue) less(i, j int) bool {
	return Better(q.items[j], q.items[i])
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			break
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
