package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

func TestTransition_AllowedPaths(t *testing.T) {
	tests := []struct {
		name    string
		current domain.DocumentStatus
		action  domain.ApprovalAction
		want    domain.DocumentStatus
	}{
		{"submit draft", domain.StatusDraft, domain.ActionSubmit, domain.StatusPending},
		{"cancel draft", domain.StatusDraft, domain.ActionCancel, domain.StatusCancelled},
		{"post draft", domain.StatusDraft, domain.ActionPost, domain.StatusPosted},
		{"approve pending", domain.StatusPending, domain.ActionApprove, domain.StatusApproved},
		{"reject pending", domain.StatusPending, domain.ActionReject, domain.StatusRejected},
		{"cancel pending", domain.StatusPending, domain.ActionCancel, domain.StatusCancelled},
		{"post approved", domain.StatusApproved, domain.ActionPost, domain.StatusPosted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Transition("voucher", tt.current, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_InvalidPaths(t *testing.T) {
	tests := []struct {
		name    string
		current domain.DocumentStatus
		action  domain.ApprovalAction
	}{
		{"approve draft", domain.StatusDraft, domain.ActionApprove},
		{"reject draft", domain.StatusDraft, domain.ActionReject},
		{"submit pending", domain.StatusPending, domain.ActionSubmit},
		{"post pending", domain.StatusPending, domain.ActionPost},
		{"approve approved", domain.StatusApproved, domain.ActionApprove},
		{"cancel approved", domain.StatusApproved, domain.ActionCancel},
		{"post posted", domain.StatusPosted, domain.ActionPost},
		{"submit rejected", domain.StatusRejected, domain.ActionSubmit},
		{"submit cancelled", domain.StatusCancelled, domain.ActionSubmit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Transition("voucher", tt.current, tt.action)
			require.Error(t, err)

			var transitionErr *domain.StateTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.current, transitionErr.Current)
			assert.ErrorIs(t, err, apperrors.ErrConflict)

			// The failed transition leaves the status unchanged.
			assert.Equal(t, tt.current, got)
		})
	}
}

func TestStateTransitionError_Message(t *testing.T) {
	_, err := domain.Transition("order request", domain.StatusPosted, domain.ActionApprove)
	require.Error(t, err)
	assert.Equal(t, "order request cannot be approved, current status: posted", err.Error())
}
