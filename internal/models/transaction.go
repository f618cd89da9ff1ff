package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TypeRevenue        TransactionType = "revenue"
	TypeExpense        TransactionType = "expense"
	TypeSystemUpdate   TransactionType = "system_update"
	TypeDataAccess     TransactionType = "data_access"
	TypeConfigChange   TransactionType = "config_change"
	TypeUserAuth       TransactionType = "user_auth"
	TypeAPICall        TransactionType = "api_call"
	TypeSecurityEvent  TransactionType = "security_event"
	TypeAuditLog       TransactionType = "audit_log"
	TypeNFTMint        TransactionType = "nft_mint"
	TypeTokenTransfer  TransactionType = "token_transfer"
	TypeContractDeploy TransactionType = "contract_deploy"
	TypeOracleUpdate   TransactionType = "oracle_update"
)

// AllTransactionTypes lists every known type in display order.
var AllTransactionTypes = []TransactionType{
	TypeRevenue, TypeExpense, TypeSystemUpdate, TypeDataAccess, TypeConfigChange,
	TypeUserAuth, TypeAPICall, TypeSecurityEvent, TypeAuditLog, TypeNFTMint,
	TypeTokenTransfer, TypeContractDeploy, TypeOracleUpdate,
}

func (t TransactionType) Valid() bool {
	for _, known := range AllTransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsFinancial reports whether records of this type carry an amount and currency.
func (t TransactionType) IsFinancial() bool {
	return t == TypeRevenue || t == TypeExpense || t == TypeTokenTransfer
}

const StatusLogged = "logged"

// EventData is the payload of a logged record. Details semantics vary by Type.
type EventData struct {
	Type            TransactionType  `json:"type"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Description     string           `json:"description"`
	Category        string           `json:"category,omitempty"`
	Date            string           `json:"date,omitempty"`
	Tags            string           `json:"tags,omitempty"`
	Network         string           `json:"network,omitempty"`
	UserAddress     string           `json:"userAddress,omitempty"`
	ContractAddress string           `json:"contractAddress,omitempty"`
	ReferenceID     string           `json:"referenceId,omitempty"`
	User            string           `json:"user,omitempty"`
	Details         map[string]any   `json:"details,omitempty"`
}

// Transaction is an immutable entry of the chain log.
type Transaction struct {
	ID            string    `json:"id" db:"id"`
	Data          EventData `json:"data" db:"data"`
	Timestamp     int64     `json:"timestamp" db:"timestamp"`
	Status        string    `json:"status,omitempty" db:"status"`
	BlockNumber   int64     `json:"blockNumber,omitempty" db:"block_number"`
	Confirmations int       `json:"confirmations,omitempty" db:"confirmations"`
}

// Time returns the creation time in UTC.
func (t *Transaction) Time() time.Time {
	return time.UnixMilli(t.Timestamp).UTC()
}
