package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/catalog"
	"github.com/goodnatureofminers/featuregate/internal/epoch"
	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/internal/service/compat"
	"github.com/goodnatureofminers/featuregate/internal/service/replay"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	a := &app{ctx: context.Background(), logger: zap.NewNop(), out: &out}
	parser := newParser(a)
	parser.Options &^= flags.PrintErrors
	_, err := parser.ParseArgs(args)
	return out.String(), err
}

func TestIdentityCommand(t *testing.T) {
	out, err := runCommand(t, "identity")
	require.NoError(t, err)
	require.Equal(t, catalog.Default().Identity().String()+"\n", out)
}

func TestIdentityCommandJSON(t *testing.T) {
	out, err := runCommand(t, "--json", "identity")
	require.NoError(t, err)

	var got identityView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, catalog.Default().Identity(), got.Identity)
	require.Equal(t, catalog.Default().Len(), got.Features)
}

func TestCatalogCommand(t *testing.T) {
	out, err := runCommand(t, "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, catalog.Default().Len()+1)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, out, catalog.ReduceStakeWarmupCooldown.String())
}

func TestStatusCommandRejectsNegativeSlot(t *testing.T) {
	_, err := runCommand(t, "status", "--clickhouse-dsn", "clickhouse://localhost:9000/default", "--slot=-5")
	require.ErrorContains(t, err, "slot")
}

func TestStatusCommandRejectsShortEpochs(t *testing.T) {
	_, err := runCommand(t, "status", "--clickhouse-dsn", "clickhouse://localhost:9000/default", "--slots-per-epoch=16")
	require.ErrorIs(t, err, epoch.ErrSlotsPerEpochTooSmall)
}

func TestNewStatusViewUsesSchedule(t *testing.T) {
	set := feature.NewSet(catalog.Default())
	set.Activate(catalog.ReduceStakeWarmupCooldown, 1000)

	schedule, err := epoch.WithoutWarmup(100)
	require.NoError(t, err)

	view := newStatusView(model.Testnet, set, replay.Result{Seen: 1, Applied: 1, Head: 1000}, schedule)
	require.NotNil(t, view.WarmupCooldownRate)
	require.Equal(t, uint64(10), *view.WarmupCooldownRate)
	require.Len(t, view.ActiveFeatures, 1)
	require.Equal(t, uint64(1000), *view.ActiveFeatures[0].Slot)

	view = newStatusView(model.Testnet, set, replay.Result{Head: 1000}, epoch.Default())
	require.Equal(t, epoch.Default().Epoch(1000), *view.WarmupCooldownRate)
}

func TestCheckPeersCommand(t *testing.T) {
	identity := func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Identity{Network: model.Mainnet, Catalog: catalog.Default().Identity()})
	}
	good := httptest.NewServer(http.HandlerFunc(identity))
	defer good.Close()
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Identity{Network: model.Mainnet})
	}))
	defer other.Close()

	out, err := runCommand(t, "--json", "check-peers", "--peer", good.URL)
	require.NoError(t, err)
	var statuses []compat.PeerStatus
	require.NoError(t, json.Unmarshal([]byte(out), &statuses))
	require.Len(t, statuses, 1)
	require.Equal(t, compat.StatusCompatible, statuses[0].Status)

	out, err = runCommand(t, "check-peers", "--peer", good.URL, "--peer", other.URL)
	require.ErrorIs(t, err, errIncompatiblePeers)
	require.Contains(t, out, "mismatch")
	require.Contains(t, out, "compatible")
}
