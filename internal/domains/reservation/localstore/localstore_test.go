package localstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fuego/config"
	"fuego/infras/otel/mocks"
	"fuego/internal/domains/reservation/localstore"
	"fuego/internal/domains/reservation/model/dto"

	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T) (localstore.Store, string) {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Fallback.DataDir = dir

	return localstore.New(cfg, mocks.NewOtel()), dir
}

func TestStore_SaveAndLoad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	records := []dto.ReservationData{
		{ID: "local-1", ClientName: "Maria", Pax: "2 Pessoas", Status: "pending", CreatedAt: 2000},
		{ID: "local-2", ClientName: "João", Pax: "4 Pessoas", Status: "confirmed", CreatedAt: 1000},
	}

	assert.NoError(t, store.Save(ctx, records))
	assert.Equal(t, records, store.Load(ctx))
}

func TestStore_LoadMissingBlob(t *testing.T) {
	store, _ := newStore(t)

	assert.Empty(t, store.Load(context.Background()))
}

func TestStore_LoadCorruptBlob(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "fuego_reservations.json"), []byte("{not json"), 0o644))

	assert.Empty(t, store.Load(ctx))
}

func TestStore_SaveOverwritesWholeList(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, []dto.ReservationData{{ID: "a", CreatedAt: 1}}))
	assert.NoError(t, store.Save(ctx, []dto.ReservationData{{ID: "b", CreatedAt: 2}}))

	records := store.Load(ctx)

	assert.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ID)
}
