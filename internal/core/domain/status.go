package domain

import (
	"fmt"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
)

// DocumentStatus is the lifecycle state shared by approvable and postable
// documents.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPending   DocumentStatus = "pending"
	StatusApproved  DocumentStatus = "approved"
	StatusRejected  DocumentStatus = "rejected"
	StatusCancelled DocumentStatus = "cancelled"
	StatusPosted    DocumentStatus = "posted"
)

// ApprovalAction names a requested lifecycle transition.
type ApprovalAction string

const (
	ActionSubmit  ApprovalAction = "submitted"
	ActionApprove ApprovalAction = "approved"
	ActionReject  ApprovalAction = "rejected"
	ActionCancel  ApprovalAction = "cancelled"
	ActionPost    ApprovalAction = "posted"
)

// approvalTransitions is the explicit from-state x action table. Anything
// not listed here is an invalid transition.
var approvalTransitions = map[DocumentStatus]map[ApprovalAction]DocumentStatus{
	StatusDraft: {
		ActionSubmit: StatusPending,
		ActionCancel: StatusCancelled,
		ActionPost:   StatusPosted,
	},
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
		ActionCancel:  StatusCancelled,
	},
	StatusApproved: {
		ActionPost: StatusPosted,
	},
}

// StateTransitionError reports an attempted transition that the table does
// not allow. It carries the current status so callers can surface it.
type StateTransitionError struct {
	Entity  string
	Action  ApprovalAction
	Current DocumentStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s cannot be %s, current status: %s", e.Entity, e.Action, e.Current)
}

func (e *StateTransitionError) Unwrap() error {
	return apperrors.ErrConflict
}

// Transition resolves the next status for (current, action) or returns a
// StateTransitionError. It never mutates anything; callers apply the result.
func Transition(entity string, current DocumentStatus, action ApprovalAction) (DocumentStatus, error) {
	if actions, ok := approvalTransitions[current]; ok {
		if next, ok := actions[action]; ok {
			return next, nil
		}
	}
	return current, &StateTransitionError{Entity: entity, Action: action, Current: current}
}
