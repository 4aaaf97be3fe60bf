package ledger

import (
	"strconv"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

// InitializeRegistry creates the global vault registry. Only the module deployer may submit it.
func InitializeRegistry() Call {
	return Call{Function: "initialize_vault_registry"}
}

// CreateVault registers a new vault owned by the signer.
func CreateVault(name string, members []model.Member, signaturesRequired int) Call {
	addresses := make([]string, 0, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		addresses = append(addresses, m.Address.String())
		names = append(names, m.Name)
	}
	return Call{
		Function:  "create_vault",
		Arguments: []any{name, addresses, names, strconv.Itoa(signaturesRequired)},
	}
}

// DepositToVault moves amount base units from the signer into the vault holding account.
func DepositToVault(owner model.Address, amount model.Amount) Call {
	return Call{
		Function:  "deposit_to_vault",
		Arguments: []any{owner.String(), strconv.FormatUint(uint64(amount), 10)},
	}
}

// UpdateTransactionHash records txHash in the vault's ledger-side history.
func UpdateTransactionHash(owner model.Address, txHash string) Call {
	return Call{
		Function:  "update_transaction_hash",
		Arguments: []any{owner.String(), txHash},
	}
}
