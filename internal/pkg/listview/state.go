package listview

import "fmt"

// State is the load state of a view's collection.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Event int

const (
	EventFetch Event = iota
	EventSucceed
	EventFail
)

func (e Event) String() string {
	switch e {
	case EventFetch:
		return "fetch"
	case EventSucceed:
		return "succeed"
	case EventFail:
		return "fail"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Next returns the state reached from s on e.
//
//	Idle|Loaded|Failed|Loading --fetch--> Loading
//	Loading --succeed--> Loaded
//	Loading --fail--> Failed
func (s State) Next(e Event) (State, error) {
	switch e {
	case EventFetch:
		return Loading, nil
	case EventSucceed:
		if s == Loading {
			return Loaded, nil
		}
	case EventFail:
		if s == Loading {
			return Failed, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}
