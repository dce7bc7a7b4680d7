package dto

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a ledger account.
type CreateAccountRequest struct {
	Code       string  `json:"code" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required,accounttype"`
	ParentID   *string `json:"parentID"`
	IsCurrent  bool    `json:"isCurrent"`
	IsCashBank bool    `json:"isCashBank"`
}

// AccountResponse is the external representation of a ledger account.
type AccountResponse struct {
	AccountID  string  `json:"accountID"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NormalSide string  `json:"normalSide"`
	ParentID   *string `json:"parentID"`
	IsCurrent  bool    `json:"isCurrent"`
	IsCashBank bool    `json:"isCashBank"`
	IsActive   bool    `json:"isActive"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.ChartOfAccount) AccountResponse {
	return AccountResponse{
		AccountID:  a.AccountID,
		Code:       a.Code,
		Name:       a.Name,
		Type:       string(a.Type),
		NormalSide: string(a.Type.NormalBalance()),
		ParentID:   a.ParentID,
		IsCurrent:  a.IsCurrent,
		IsCashBank: a.IsCashBank,
		IsActive:   a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.ChartOfAccount) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
