package observer

import "sync"

// source is one observable slot. Reactions that read it subscribe to it.
type source struct {
	mu   sync.Mutex
	subs []*reactionBase
}

func (s *source) subscribe(r *reactionBase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub == r {
			return
		}
	}
	s.subs = append(s.subs, r)
}

func (s *source) unsubscribe(r *reactionBase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == r {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *source) subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// notify triggers every subscriber, or queues it when a batch is open.
func (s *source) notify() {
	s.mu.Lock()
	subs := make([]*reactionBase, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, r := range subs {
		if enqueue(r) {
			continue
		}
		r.trigger()
	}
}
