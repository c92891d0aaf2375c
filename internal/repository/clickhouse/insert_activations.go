package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

// InsertActivations stores activation rows. Every activation slot of a feature
// is kept; rows repeating the same network, feature and slot collapse into one.
func (r *Repository) InsertActivations(ctx context.Context, activations []model.Activation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_activations", firstNetwork(activations), err, start)
	}()

	if len(activations) == 0 {
		return nil
	}

	const query = `
INSERT INTO feature_activations (
	network,
	feature_id,
	slot
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare activations batch: %w", err)
	}

	for _, a := range activations {
		if err = batch.Append(
			string(a.Network),
			string(a.FeatureID.Bytes()),
			a.Slot,
		); err != nil {
			return fmt.Errorf("append activation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert activations: %w", err)
	}
	return nil
}

func firstNetwork(activations []model.Activation) model.Network {
	if len(activations) == 0 {
		return ""
	}
	return activations[0].Network
}
