package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

const insertActivityQuery = `
INSERT INTO vault_activity (
	member,
	id,
	vault_id,
	type,
	amount,
	from_address,
	purpose,
	withdrawal_request_id,
	timestamp
) VALUES`

// InsertActivity stores local activity records produced by the session of member.
func (r *Repository) InsertActivity(ctx context.Context, member model.Address, records []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_activity", err, start)
		if err == nil {
			r.metrics.ObserveRows("insert_activity", len(records))
		}
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertActivityQuery)
	if err != nil {
		return fmt.Errorf("prepare activity batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			member.String(),
			rec.ID,
			rec.VaultID,
			string(rec.Type),
			nullableAmount(rec.Amount),
			rec.From.String(),
			rec.Purpose,
			rec.WithdrawalRequestID,
			rec.Timestamp,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append activity %s: %w", rec.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func nullableAmount(a *model.Amount) *uint64 {
	if a == nil {
		return nil
	}
	v := uint64(*a)
	return &v
}
