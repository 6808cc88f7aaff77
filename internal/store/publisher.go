package store

import "sync"

// activeUserPublisher fans the active-user-id value out to subscribers with
// last-value replay. Each subscriber gets a buffered channel of size one;
// when a subscriber lags, the stale value is dropped and replaced by the
// newest one, so a reader always converges on the latest active user id.
type activeUserPublisher struct {
	mu      sync.Mutex
	last    string
	hasLast bool
	closed  bool
	subs    map[int]chan string
	nextID  int
}

func newActiveUserPublisher() *activeUserPublisher {
	return &activeUserPublisher{subs: make(map[int]chan string)}
}

// publish records v as the latest value and delivers it to every subscriber.
func (p *activeUserPublisher) publish(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.last = v
	p.hasLast = true

	for _, ch := range p.subs {
		send(ch, v)
	}
}

// subscribe registers a new subscriber and replays the last published value
// immediately when one exists. The returned cancel func unregisters the
// subscriber and closes its channel; it is safe to call more than once.
func (p *activeUserPublisher) subscribe() (<-chan string, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan string, 1)
	if p.closed {
		close(ch)
		return ch, func() {}
	}

	id := p.nextID
	p.nextID++
	p.subs[id] = ch

	if p.hasLast {
		ch <- p.last
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if c, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(c)
			}
		})
	}

	return ch, cancel
}

// close terminates every subscription. Further publishes are dropped.
func (p *activeUserPublisher) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}

// send delivers v to a size-one channel with latest-wins semantics: a full
// buffer is drained before writing so the subscriber never blocks publish.
func send(ch chan string, v string) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
