package history

// Queue buffers pending inputs until they are drained in FIFO order.
type Queue[T any] struct {
	pending []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.pending = append(q.pending, v)
}

func (q *Queue[T]) Len() int {
	return len(q.pending)
}

// Drain hands each pending item to process, front first. If process fails,
// draining stops: the failing item and everything behind it stay queued.
// It returns the number of items consumed.
func (q *Queue[T]) Drain(process func(T) error) (int, error) {
	processed := 0
	for len(q.pending) > 0 {
		if err := process(q.pending[0]); err != nil {
			return processed, err
		}

		var zero T
		q.pending[0] = zero
		q.pending = q.pending[1:]
		processed++
	}
	q.pending = nil

	return processed, nil
}
