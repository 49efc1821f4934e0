package broadcast

import "time"

// Kind identifies one signal channel. The medium keeps only the latest marker
// per kind (last-write-wins), so rapid repeated signals of the same kind may
// collapse.
type Kind string

// Signal kinds shared by every process of the same installation.
const (
	KindLogin  Kind = "login-event"
	KindLogout Kind = "logout-event"
)

// Marker is one broadcast signal value. Origin identifies the writing
// process so it can ignore its own markers.
type Marker struct {
	Kind   Kind      `json:"kind"`
	Origin string    `json:"origin"`
	At     time.Time `json:"at"`
}

// Handler consumes markers written by other processes.
type Handler func(Marker)

// Medium is a same-host broadcast channel. Contract: last-write-wins per
// kind, at-least-once delivery, no ordering guarantee across kinds, and a
// process never receives markers it published itself.
type Medium interface {
	// Publish overwrites the current marker of the given kind.
	Publish(kind Kind) error

	// Subscribe registers a handler for externally-written markers of the
	// given kind and returns an unsubscribe function.
	Subscribe(kind Kind, handler Handler) (func(), error)
}
