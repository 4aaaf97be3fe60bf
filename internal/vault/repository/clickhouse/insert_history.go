package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

const insertHistoryQuery = `
INSERT INTO vault_transaction_history (
	owner,
	id,
	tx_type,
	from_address,
	to_address,
	amount,
	description,
	tx_hash,
	timestamp,
	executed_by
) VALUES`

// InsertHistory stores ledger-confirmed history entries of the vault owned by owner.
// Entries are keyed by (owner, id), so re-archiving the same entry is collapsed on merge.
func (r *Repository) InsertHistory(ctx context.Context, owner model.Address, entries []model.TransactionHistory) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_history", err, start)
		if err == nil {
			r.metrics.ObserveRows("insert_history", len(entries))
		}
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertHistoryQuery)
	if err != nil {
		return fmt.Errorf("prepare history batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			owner.String(),
			e.ID,
			string(e.TxType),
			e.From.String(),
			e.To.String(),
			uint64(e.Amount),
			e.Description,
			e.TxHash,
			e.Timestamp,
			e.ExecutedBy.String(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append history entry %d: %w", e.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}
