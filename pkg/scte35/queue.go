package scte35

import "container/list"

// Message is a synthesized section pair awaiting emission. At least one
// of ScheduledBytes or ImmediateBytes is non-nil immediately after
// synthesis.
type Message struct {
	CrSys          uint64
	CommandType    CommandType
	ScheduledBytes []byte
	ImmediateBytes []byte
}

// pendingQueue is the ordered set of Messages awaiting emission.
// Insertion order is creation order; no deduplication by event_id.
//
// Built on container/list rather than a hand-rolled intrusive list: the
// scheduler's traversal needs to remove the current element mid-walk,
// which list.Element supports directly without invalidating neighboring
// elements.
type pendingQueue struct {
	l *list.List
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{l: list.New()}
}

func (q *pendingQueue) push(m *Message) {
	q.l.PushBack(m)
}

func (q *pendingQueue) len() int { return q.l.Len() }

// clearScheduled drops the scheduled form of every pending Message,
// leaving only immediate (catch-up) forms where they exist.
func (q *pendingQueue) clearScheduled() {
	for e := q.l.Front(); e != nil; e = e.Next() {
		e.Value.(*Message).ScheduledBytes = nil
	}
}

// each walks the queue in FIFO order, invoking fn for every Message. If
// fn reports remove, the Message is unlinked immediately; the walk is
// safe because the successor is captured before fn runs.
func (q *pendingQueue) each(fn func(*Message) (remove bool)) {
	e := q.l.Front()
	for e != nil {
		next := e.Next()
		if fn(e.Value.(*Message)) {
			q.l.Remove(e)
		}
		e = next
	}
}

// drain empties the queue unconditionally, used by Teardown.
func (q *pendingQueue) drain() {
	q.l.Init()
}
