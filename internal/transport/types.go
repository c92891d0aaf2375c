package transport

import (
	"context"

	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/internal/service/replay"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SnapshotSource interface {
		Snapshot() (replay.Snapshot, bool)
	}
	ActivationRecorder interface {
		Record(ctx context.Context, activations ...model.Activation) error
	}
)
