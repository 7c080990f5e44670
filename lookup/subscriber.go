package lookup

// Subscriber routes events to per-type handlers
type Subscriber struct {
	sourceFetchedHandler   func(SourceFetched)
	sourceFailedHandler    func(SourceFailed)
	lookupCompletedHandler func(LookupCompleted)
}

// OnSourceFetched sets the handler for SourceFetched events
func OnSourceFetched(fn func(SourceFetched)) func(*Subscriber) {
	return func(s *Subscriber) { s.sourceFetchedHandler = fn }
}

// OnSourceFailed sets the handler for SourceFailed events
func OnSourceFailed(fn func(SourceFailed)) func(*Subscriber) {
	return func(s *Subscriber) { s.sourceFailedHandler = fn }
}

// OnLookupCompleted sets the handler for LookupCompleted events
func OnLookupCompleted(fn func(LookupCompleted)) func(*Subscriber) {
	return func(s *Subscriber) { s.lookupCompletedHandler = fn }
}

// NewSubscriber builds an Observer from the given handlers.
// Events without a handler are dropped.
//
// Example:
//
//	svc := lookup.NewService(fetcher, lookup.WithObserver(lookup.NewSubscriber(
//	  lookup.OnSourceFailed(func(e lookup.SourceFailed) { ... }),
//	)))
func NewSubscriber(opts ...func(*Subscriber)) Observer {
	s := &Subscriber{
		sourceFetchedHandler:   func(SourceFetched) {},   // nop by default
		sourceFailedHandler:    func(SourceFailed) {},    // nop by default
		lookupCompletedHandler: func(LookupCompleted) {}, // nop by default
	}

	for _, opt := range opts {
		opt(s)
	}

	return s.dispatch
}

func (s *Subscriber) dispatch(ev Event) {
	switch e := ev.(type) {
	case SourceFetched:
		s.sourceFetchedHandler(e)
	case SourceFailed:
		s.sourceFailedHandler(e)
	case LookupCompleted:
		s.lookupCompletedHandler(e)
	}
}
