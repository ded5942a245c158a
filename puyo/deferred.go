package puyo

// Deferred buffers the side effects produced during a tick. They reach the
// session only when the frame is flushed, after every system has run.
type Deferred struct {
	pops   []PopEffect
	events []Event
	defers []func()
}

func newDeferred() *Deferred {
	return &Deferred{}
}

// SpawnPop queues a pop effect.
func (d *Deferred) SpawnPop(p PopEffect) {
	d.pops = append(d.pops, p)
}

// Emit queues an event for the front-end.
func (d *Deferred) Emit(e Event) {
	d.events = append(d.events, e)
}

// Defer queues a function to run after pops and events are delivered.
func (d *Deferred) Defer(fn func()) {
	d.defers = append(d.defers, fn)
}

// Flush delivers everything to session and resets the buffer.
func (d *Deferred) Flush(session *Session) {
	session.pops = append(session.pops, d.pops...)
	session.events = append(session.events, d.events...)

	for _, fn := range d.defers {
		fn()
	}

	d.pops = d.pops[:0]
	d.events = d.events[:0]
	d.defers = d.defers[:0]
}
