package core

// Action is a discrete input event, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue buffers actions between frames in arrival order.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Drain returns all pending actions in order and empties the queue.
func (q *InputQueue) Drain() []Action {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
