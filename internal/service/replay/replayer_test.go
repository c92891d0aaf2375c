package replay

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

func TestNewReplayerValidatesDependencies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := NewMockActivationRepository(ctrl)
	metrics := NewMockMetrics(ctrl)
	c := testCatalog(t, testID(1))

	_, err := NewReplayer(nil, c, model.Mainnet, metrics, zap.NewNop())
	require.Error(t, err)
	_, err = NewReplayer(repo, nil, model.Mainnet, metrics, zap.NewNop())
	require.Error(t, err)
	_, err = NewReplayer(repo, c, "", metrics, zap.NewNop())
	require.Error(t, err)
	_, err = NewReplayer(repo, c, model.Mainnet, nil, zap.NewNop())
	require.Error(t, err)
	_, err = NewReplayer(repo, c, model.Mainnet, metrics, nil)
	require.NoError(t, err)
}

func TestReplayerBuild(t *testing.T) {
	t.Parallel()

	a, b, unknown := testID(1), testID(2), testID(9)
	c := testCatalog(t, a, b, testID(3))

	tests := []struct {
		name    string
		prepare func(repo *MockActivationRepository, metrics *MockMetrics)
		check   func(t *testing.T, res Result)
		wantErr bool
	}{
		{
			name: "applies known activations",
			prepare: func(repo *MockActivationRepository, metrics *MockMetrics) {
				repo.EXPECT().Activations(gomock.Any(), model.Mainnet, uint64(0), uint64(500)).Return([]model.Activation{
					{Network: model.Mainnet, FeatureID: a, Slot: 100},
					{Network: model.Mainnet, FeatureID: unknown, Slot: 150},
					{Network: model.Mainnet, FeatureID: b, Slot: 200},
				}, nil)
				metrics.EXPECT().ObserveReplay(nil, 2, 1, gomock.Any())
			},
			check: func(t *testing.T, res Result) {
				require.Equal(t, Result{Seen: 3, Applied: 2, Unknown: 1, Head: 200}, res)
			},
		},
		{
			name: "empty store",
			prepare: func(repo *MockActivationRepository, metrics *MockMetrics) {
				repo.EXPECT().Activations(gomock.Any(), model.Mainnet, uint64(0), uint64(500)).Return(nil, nil)
				metrics.EXPECT().ObserveReplay(nil, 0, 0, gomock.Any())
			},
			check: func(t *testing.T, res Result) {
				require.Equal(t, Result{}, res)
			},
		},
		{
			name: "repository failure",
			prepare: func(repo *MockActivationRepository, metrics *MockMetrics) {
				repo.EXPECT().Activations(gomock.Any(), model.Mainnet, uint64(0), uint64(500)).Return(nil, errors.New("boom"))
				metrics.EXPECT().ObserveReplay(gomock.Any(), 0, 0, gomock.Any())
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := NewMockActivationRepository(ctrl)
			metrics := NewMockMetrics(ctrl)
			tt.prepare(repo, metrics)

			r, err := NewReplayer(repo, c, model.Mainnet, metrics, zap.NewNop())
			require.NoError(t, err)

			set, res, err := r.Build(context.Background(), 500)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, set)
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
			require.False(t, set.IsActive(unknown))
		})
	}
}

func TestReplayerApplyKeepsSlotOrder(t *testing.T) {
	t.Parallel()

	a := testID(1)
	c := testCatalog(t, a)

	ctrl := gomock.NewController(t)
	repo := NewMockActivationRepository(ctrl)
	metrics := NewMockMetrics(ctrl)
	repo.EXPECT().Activations(gomock.Any(), model.Testnet, uint64(0), uint64(1000)).Return([]model.Activation{
		{Network: model.Testnet, FeatureID: a, Slot: 10},
		{Network: model.Testnet, FeatureID: a, Slot: 20},
	}, nil)
	metrics.EXPECT().ObserveReplay(nil, 2, 0, gomock.Any())

	r, err := NewReplayer(repo, c, model.Testnet, metrics, zap.NewNop())
	require.NoError(t, err)

	set, _, err := r.Build(context.Background(), 1000)
	require.NoError(t, err)
	slot, ok := set.ActivatedSlot(a)
	require.True(t, ok)
	require.Equal(t, uint64(20), slot)
}

func TestReplayerBuildAtHistoricalSlot(t *testing.T) {
	t.Parallel()

	a := testID(1)
	c := testCatalog(t, a)

	ctrl := gomock.NewController(t)
	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveReplay(nil, gomock.Any(), 0, gomock.Any()).AnyTimes()

	store := &memoryStore{}
	store.add(
		model.Activation{Network: model.Mainnet, FeatureID: a, Slot: 100},
		model.Activation{Network: model.Mainnet, FeatureID: a, Slot: 200},
	)

	r, err := NewReplayer(store, c, model.Mainnet, metrics, zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name       string
		slot       uint64
		wantActive bool
		wantSlot   uint64
	}{
		{name: "before first activation", slot: 99},
		{name: "between activations", slot: 150, wantActive: true, wantSlot: 100},
		{name: "after reactivation", slot: 500, wantActive: true, wantSlot: 200},
	}
	for _, tt := range tests {
		set, _, err := r.Build(context.Background(), tt.slot)
		require.NoError(t, err, tt.name)
		slot, ok := set.ActivatedSlot(a)
		require.Equal(t, tt.wantActive, ok, tt.name)
		require.Equal(t, tt.wantSlot, slot, tt.name)
	}
}
