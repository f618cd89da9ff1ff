package dto

import (
	"fisk-dimension/internal/models"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Type            string           `json:"type" validate:"required,oneof=revenue expense system_update data_access config_change user_auth api_call security_event audit_log nft_mint token_transfer contract_deploy oracle_update"`
	Amount          *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency        string           `json:"currency,omitempty" validate:"omitempty,min=2,max=10"`
	Description     string           `json:"description" validate:"required,min=1,max=500"`
	Date            string           `json:"date" validate:"required,eventdate"`
	Category        string           `json:"category" validate:"required"`
	Tags            string           `json:"tags,omitempty"`
	Network         string           `json:"network,omitempty"`
	UserAddress     string           `json:"userAddress,omitempty"`
	ContractAddress string           `json:"contractAddress,omitempty"`
	ReferenceID     string           `json:"referenceId,omitempty"`
	User            string           `json:"user,omitempty" validate:"omitempty,max=200"`
	Details         map[string]any   `json:"details,omitempty"`
}

// TransactionResponse is a logged record plus the threat it tripped, if any.
// A threat never blocks the submission.
type TransactionResponse struct {
	*models.Transaction
	Threat *models.Threat `json:"threat,omitempty"`
}

type ListTransactionsQuery struct {
	Search    string `query:"search" json:"search"`
	Types     string `query:"types" json:"types"`
	From      string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
	Page      int    `query:"page" json:"page"`
	Limit     int    `query:"limit" json:"limit"`
	Sort      string `query:"sort" json:"sort"`
	Direction string `query:"direction" json:"direction" validate:"omitempty,oneof=asc desc"`
}

type TransactionListResponse struct {
	Items []*models.Transaction `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
