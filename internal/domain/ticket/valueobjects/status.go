package valueobjects

import (
	"fmt"

	"github.com/google/uuid"
)

// StatusKind is the persisted discriminator of a Status.
type StatusKind string

const (
	StatusKindOpen     StatusKind = "open"
	StatusKindAssigned StatusKind = "assigned"
	StatusKindClosed   StatusKind = "closed"
)

var validStatusKinds = map[StatusKind]bool{
	StatusKindOpen:     true,
	StatusKindAssigned: true,
	StatusKindClosed:   true,
}

var statusTransitions = map[StatusKind][]StatusKind{
	StatusKindOpen: {
		StatusKindAssigned,
		StatusKindClosed,
	},
	StatusKindAssigned: {
		StatusKindAssigned,
		StatusKindClosed,
	},
	StatusKindClosed: {},
}

func (k StatusKind) String() string {
	return string(k)
}

func (k StatusKind) IsValid() bool {
	return validStatusKinds[k]
}

// Status is one of Open, Assigned(user) or Closed. Only the Assigned variant
// carries a user id. The zero value is Open.
type Status struct {
	kind     StatusKind
	assignee uuid.UUID
}

func StatusOpen() Status {
	return Status{kind: StatusKindOpen}
}

func StatusAssigned(user uuid.UUID) Status {
	return Status{kind: StatusKindAssigned, assignee: user}
}

func StatusClosed() Status {
	return Status{kind: StatusKindClosed}
}

// ParseStatus rebuilds a Status from its two stored columns. An assignee
// stored alongside a non-assigned status is dropped.
func ParseStatus(kind string, assignee *uuid.UUID) (Status, error) {
	switch StatusKind(kind) {
	case StatusKindOpen:
		return StatusOpen(), nil
	case StatusKindClosed:
		return StatusClosed(), nil
	case StatusKindAssigned:
		if assignee == nil || *assignee == uuid.Nil {
			return Status{}, ErrMissingAssignee
		}
		return StatusAssigned(*assignee), nil
	default:
		return Status{}, fmt.Errorf("%w: %q", ErrInvalidStatus, kind)
	}
}

func (s Status) Kind() StatusKind {
	if s.kind == "" {
		return StatusKindOpen
	}
	return s.kind
}

// Assignee returns the assigned user when the status is Assigned.
func (s Status) Assignee() (uuid.UUID, bool) {
	if s.Kind() != StatusKindAssigned {
		return uuid.Nil, false
	}
	return s.assignee, true
}

func (s Status) String() string {
	return s.Kind().String()
}

func (s Status) IsOpen() bool {
	return s.Kind() == StatusKindOpen
}

func (s Status) IsAssigned() bool {
	return s.Kind() == StatusKindAssigned
}

func (s Status) IsClosed() bool {
	return s.Kind() == StatusKindClosed
}

func (s Status) CanTransitionTo(next StatusKind) bool {
	for _, allowed := range statusTransitions[s.Kind()] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Equal(other Status) bool {
	return s.Kind() == other.Kind() && s.assignee == other.assignee
}
