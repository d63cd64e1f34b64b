package form

// State is the lifecycle position of a Session.
type State int

const (
	StateEmpty State = iota
	StateEditing
	StateValidating
	StateInvalid
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// OutcomeKind tells the caller which notice to show after a submit.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeAdded
	OutcomeUpdated
	// OutcomeDegraded means the contact was written but its image was not.
	OutcomeDegraded
)

// Notices shown after a submit.
const (
	MsgContactAdded         = "Contact has been added successfully"
	MsgContactUpdated       = "Contact has been updated successfully"
	MsgContactImageNotSaved = "Contact has been saved, but the image could not be saved"
)

// Outcome describes a finished submit.
type Outcome struct {
	Kind      OutcomeKind
	ContactID string
	Message   string
}
