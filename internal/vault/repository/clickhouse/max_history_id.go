package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

const maxHistoryIDQuery = `
SELECT count() AS entries, coalesce(max(id), toUInt64(0)) AS max_id
FROM vault_transaction_history
WHERE owner = ?`

// MaxHistoryID returns the highest archived history id of the vault owned by owner.
// found is false when nothing has been archived for it yet.
func (r *Repository) MaxHistoryID(ctx context.Context, owner model.Address) (maxID uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_history_id", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxHistoryIDQuery, owner.String())
	if err != nil {
		return 0, false, fmt.Errorf("query max history id: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("max history id not found")
	}

	var entries uint64
	if err = rows.Scan(&entries, &maxID); err != nil {
		return 0, false, fmt.Errorf("scan max history id: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max history id: %w", err)
	}

	return maxID, entries > 0, nil
}
