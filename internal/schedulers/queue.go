package schedulers

// processQueue is a FIFO of process indices into a simulation's working set.
type processQueue struct {
	q []int
}

func newProcessQueue() *processQueue {
	return &processQueue{q: make([]int, 0)}
}

func (q *processQueue) addToEnd(i int) {
	q.q = append(q.q, i)
}

func (q *processQueue) addToFront(i int) {
	q.q = append([]int{i}, q.q...)
}

func (q *processQueue) removeFromTop() (int, bool) {
	if len(q.q) == 0 {
		return -1, false
	}
	i := q.q[0]
	q.q = q.q[1:]
	return i, true
}
