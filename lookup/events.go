package lookup

import "time"

// Event represents something observable that happened during a lookup
type Event any

// Observer receives lookup events synchronously
type Observer func(Event)

type SourceFetched struct {
	Address  string
	Source   string
	URL      string
	Bytes    int
	Duration time.Duration
}

type SourceFailed struct {
	Address  string
	Source   string
	URL      string
	Err      error
	Duration time.Duration
}

type LookupCompleted struct {
	Address   string
	Sources   int
	Succeeded int
	Record    Record
	Duration  time.Duration
}
