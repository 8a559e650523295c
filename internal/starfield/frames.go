package starfield

// FrameQueue is a Scheduler for hosts that pump frames themselves, such as
// a game loop's update tick. The zero value is ready to use. It is not safe
// for concurrent use.
type FrameQueue struct {
	last    FrameID
	queued  []queuedFrame
	running []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn func()
}

// RequestFrame queues fn for the next Run.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.last++
	q.queued = append(q.queued, queuedFrame{id: q.last, fn: fn})
	return q.last
}

// CancelFrame removes a queued callback. Unknown or already run ids are
// ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.queued {
		if q.queued[i].id == id {
			q.queued = append(q.queued[:i], q.queued[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Run.
func (q *FrameQueue) Pending() int { return len(q.queued) }

// Run executes the callbacks queued before the call, in request order.
// Callbacks requested while running wait for the next Run. It returns the
// number of callbacks executed.
func (q *FrameQueue) Run() int {
	q.running, q.queued = q.queued, nil
	n := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		n++
	}
	q.running = nil
	return n
}
