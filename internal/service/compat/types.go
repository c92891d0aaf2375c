package compat

import (
	"context"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	IdentityFetcher interface {
		FetchIdentity(ctx context.Context, peer string) (model.Identity, error)
	}
	Metrics interface {
		ObserveCheck(outcome string, started time.Time)
	}
)
