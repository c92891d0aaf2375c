package recorder

import (
	"context"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ActivationWriter interface {
		InsertActivations(ctx context.Context, activations []model.Activation) error
	}
	Metrics interface {
		ObserveReceived(network model.Network, known bool)
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped(size int)
	}
)
