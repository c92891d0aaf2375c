package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

// MaxActivationSlot returns the highest stored activation slot of network.
// The boolean is false when nothing has been stored yet.
func (r *Repository) MaxActivationSlot(ctx context.Context, network model.Network) (slot uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_activation_slot", network, err, start)
	}()

	const query = `
SELECT coalesce(max(slot), toUInt64(0)) AS max_slot, count() AS total
FROM feature_activations FINAL
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max activation slot: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("max activation slot not found")
	}

	var total uint64
	if err = rows.Scan(&slot, &total); err != nil {
		return 0, false, fmt.Errorf("scan max activation slot: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max activation slot: %w", err)
	}

	return slot, total > 0, nil
}
