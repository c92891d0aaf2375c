package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
)

// Activations returns the activations of network with fromSlot <= slot <= toSlot,
// ordered by slot.
func (r *Repository) Activations(ctx context.Context, network model.Network, fromSlot, toSlot uint64) (out []model.Activation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("activations", network, err, start)
	}()

	const query = `
SELECT feature_id, slot
FROM feature_activations FINAL
WHERE network = ? AND slot >= ? AND slot <= ?
ORDER BY slot, feature_id`

	rows, err := r.conn.Query(ctx, query, string(network), fromSlot, toSlot)
	if err != nil {
		return nil, fmt.Errorf("query activations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			rawID string
			slot  uint64
		)
		if err = rows.Scan(&rawID, &slot); err != nil {
			return nil, fmt.Errorf("scan activation: %w", err)
		}
		if len(rawID) != feature.IDSize {
			err = fmt.Errorf("activation at slot %d: %w: %d bytes", slot, feature.ErrInvalidID, len(rawID))
			return nil, err
		}
		var id feature.ID
		copy(id[:], rawID)
		out = append(out, model.Activation{Network: network, FeatureID: id, Slot: slot})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activations: %w", err)
	}

	return out, nil
}
