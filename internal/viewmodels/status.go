// Package viewmodels holds one explicit view-model struct per screen.
// Each carries an enumerated status driven only by the completion of
// fetch and mutate calls; nothing here is reactive. After any write the
// views reload their lists in full rather than patching local state, so
// what is shown always reflects the server after a mutation, at the
// cost of an extra round trip.
package viewmodels

// Status is the lifecycle of a view between mount and render.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// MarshalJSON renders the status by name for the shell's JSON view
// state.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
