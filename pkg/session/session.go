package session

// Status is the lifecycle state of a session instance.
type Status int

const (
	// StatusNone is the initial state and the state after Destroy or Close.
	StatusNone Status = iota
	// StatusActive means Start has run against an inbound token.
	StatusActive
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	default:
		return "none"
	}
}

// Session is the request-facing surface of a claims-bearing session.
type Session interface {
	Start() bool
	Write() bool
	Destroy() bool
	Get(name string, def any) any
	Set(name string, value any)
	Has(name string) bool
	Remove(name string)
	Status() Status
	IsAuthenticated() bool
}

var _ Session = (*Codec)(nil)
