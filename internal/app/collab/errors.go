package collab

import (
	"fmt"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// MutationError reports a mutation whose persistence failed. The local
// change has already been rolled back (deletes excepted) when it is returned.
// Message is safe to show to the user.
type MutationError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Kind, e.Err)
}

// Unwrap exposes both domain.ErrUnavailable and the persistence cause.
func (e *MutationError) Unwrap() []error {
	return []error{domain.ErrUnavailable, e.Err}
}

var failureMessages = map[Kind]string{
	KindJoin:    "Could not join the project. Try again.",
	KindLeave:   "Could not leave the project.",
	KindRequest: "Could not send the request. Try again.",
	KindRespond: "Could not update the request.",
	KindCreate:  "Could not save the project.",
	KindUpdate:  "Could not save the project.",
	KindDelete:  "Could not delete the project.",
}

func newMutationError(kind Kind, err error) *MutationError {
	msg, ok := failureMessages[kind]
	if !ok {
		msg = "Something went wrong. Try again."
	}
	return &MutationError{Kind: kind, Message: msg, Err: err}
}

// UserMessage returns the text shown to the user instead of the cause.
func (e *MutationError) UserMessage() string {
	return e.Message
}
