package domain

// Subscription identifies a registered listener so it can be removed.
type Subscription uint64

type subscriber[T any] struct {
	id Subscription
	fn func(T)
}

// subscribers is an ordered listener list. Listeners are called in
// registration order.
type subscribers[T any] struct {
	next Subscription
	list []subscriber[T]
}

func (s *subscribers[T]) add(fn func(T)) Subscription {
	s.next++
	s.list = append(s.list, subscriber[T]{id: s.next, fn: fn})
	return s.next
}

func (s *subscribers[T]) remove(id Subscription) bool {
	for i, sub := range s.list {
		if sub.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return true
		}
	}
	return false
}

func (s *subscribers[T]) notify(v T) {
	// listeners may unsubscribe while being notified
	list := s.list
	for _, sub := range list {
		sub.fn(v)
	}
}

func (s *subscribers[T]) len() int { return len(s.list) }
