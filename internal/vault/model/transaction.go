package model

import "time"

// TransactionType classifies a local activity record.
type TransactionType string

const (
	TxDeposit            TransactionType = "deposit"
	TxWithdrawalRequest  TransactionType = "withdrawal_request"
	TxApproval           TransactionType = "approval"
	TxRejection          TransactionType = "rejection"
	TxWithdrawalComplete TransactionType = "withdrawal_complete"
)

// Transaction is an append-only local activity record. It mirrors what this
// session did and is not the ledger's history of record.
type Transaction struct {
	ID                  string
	VaultID             string
	Type                TransactionType
	Amount              *Amount
	From                Address
	Purpose             string
	WithdrawalRequestID string
	Timestamp           time.Time
}

// HistoryType classifies a ledger-confirmed history entry.
type HistoryType string

const (
	HistoryDeposit    HistoryType = "deposit"
	HistoryWithdrawal HistoryType = "withdrawal"
	HistoryTransfer   HistoryType = "transfer"
)

// TransactionHistory is a ledger-confirmed history entry of a vault.
type TransactionHistory struct {
	ID          uint64
	TxType      HistoryType
	From        Address
	To          Address
	Amount      Amount
	Description string
	TxHash      string
	Timestamp   time.Time
	ExecutedBy  Address
}
