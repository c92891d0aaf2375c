package replay

import (
	"context"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ActivationRepository interface {
		Activations(ctx context.Context, network model.Network, fromSlot, toSlot uint64) ([]model.Activation, error)
	}
	Metrics interface {
		ObserveReplay(err error, applied, unknown int, started time.Time)
		ObserveFeatureSet(active int, head uint64)
	}
	Readiness interface {
		SetReady(ready bool)
	}
)
