package submission

import "sync"

// Observer receives the visible side effects of a submission.
type Observer interface {
	// Reset shows the ready status and clears the result of kind.
	Reset(kind Kind, status string)
	// SetStatus replaces the status line only.
	SetStatus(kind Kind, state State, status string)
	// Complete applies status and result of a finished attempt together.
	Complete(o Outcome)
}

// Discard is an Observer for hosts that render the Outcome themselves.
var Discard Observer = discard{}

type discard struct{}

func (discard) Reset(Kind, string) {}

func (discard) SetStatus(Kind, State, string) {}

func (discard) Complete(Outcome) {}

// Snapshot is a consistent view of the board. Seq grows with every update;
// a subscriber that sees a lower Seq than one it already applied must drop it.
type Snapshot struct {
	Seq         uint64
	Status      string
	StatusState State
	Results     map[Kind]string
	States      map[Kind]State
}

// Result returns the result text of kind.
func (s Snapshot) Result(kind Kind) string {
	return s.Results[kind]
}

// Board holds one status line and one result field per kind. Writes for one
// kind never touch another kind's result; unknown kinds only move the status.
type Board struct {
	mu          sync.Mutex
	status      string
	statusState State
	results     map[Kind]string
	states      map[Kind]State
	seq         uint64

	nextID    int
	listeners map[int]func(Snapshot)
}

func NewBoard(readyStatus string) *Board {
	b := &Board{
		status:    readyStatus,
		results:   make(map[Kind]string, len(Kinds)),
		states:    make(map[Kind]State, len(Kinds)),
		listeners: make(map[int]func(Snapshot)),
	}
	for _, k := range Kinds {
		b.results[k] = ""
		b.states[k] = Idle
	}
	return b
}

// Subscribe registers fn for every change. fn runs on the goroutine that
// changed the board, so concurrent updates may arrive out of order; compare
// Snapshot.Seq. UI hosts must marshal onto their own thread.
func (b *Board) Subscribe(fn func(Snapshot)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) Reset(kind Kind, status string) {
	b.update(func() {
		b.status = status
		b.statusState = Idle
		if kind.Valid() {
			b.results[kind] = ""
			b.states[kind] = Idle
		}
	})
}

func (b *Board) SetStatus(kind Kind, state State, status string) {
	b.update(func() {
		b.status = status
		b.statusState = state
		if kind.Valid() {
			b.states[kind] = state
		}
	})
}

func (b *Board) Complete(o Outcome) {
	b.update(func() {
		b.status = o.Status
		b.statusState = o.State
		if !o.Kind.Valid() {
			return
		}
		b.states[o.Kind] = o.State
		if o.Result != "" {
			b.results[o.Kind] = o.Result
		}
	})
}

func (b *Board) update(mutate func()) {
	b.mu.Lock()
	mutate()
	b.seq++
	snap := b.snapshotLocked()
	listeners := make([]func(Snapshot), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func (b *Board) snapshotLocked() Snapshot {
	snap := Snapshot{
		Seq:         b.seq,
		Status:      b.status,
		StatusState: b.statusState,
		Results:     make(map[Kind]string, len(b.results)),
		States:      make(map[Kind]State, len(b.states)),
	}
	for k, v := range b.results {
		snap.Results[k] = v
	}
	for k, v := range b.states {
		snap.States[k] = v
	}
	return snap
}
