package localstore

//go:generate go run go.uber.org/mock/mockgen -source=./localstore.go -destination=../mocks/localstore_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fuego/config"
	"fuego/infras/otel"
	"fuego/internal/domains/reservation/model/dto"
	"fuego/shared/constant"

	"github.com/rs/zerolog/log"
)

// storageKey names the single blob holding the full reservation list.
const storageKey = "fuego_reservations"

// Store is the on-device fallback persistence surface. The whole list lives
// under one key; callers read-modify-write, there is no partial update.
type Store interface {
	// Load returns the persisted list. An absent or unparseable blob is not
	// an error, it reads as an empty list.
	Load(ctx context.Context) []dto.ReservationData
	// Save overwrites the blob with the given list.
	Save(ctx context.Context, records []dto.ReservationData) error
}

type storeImpl struct {
	path string
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Store {
	return &storeImpl{
		path: filepath.Join(cfg.Fallback.DataDir, storageKey+".json"),
		otel: ot,
	}
}

func (s *storeImpl) Load(ctx context.Context) []dto.ReservationData {
	_, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Load")
	defer scope.End()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read local reservation blob, treating as empty")
		}

		return []dto.ReservationData{}
	}

	records := []dto.ReservationData{}
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt blobs are swallowed, the fallback store never fails a read.
		log.Warn().Err(err).Str("path", s.path).Msg("local reservation blob is corrupt, treating as empty")

		return []dto.ReservationData{}
	}

	return records
}

func (s *storeImpl) Save(ctx context.Context, records []dto.ReservationData) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal local reservation blob: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create local store directory: %w", err)
	}

	// Write-then-rename keeps the blob whole even if the process dies mid-save.
	tmp, err := os.CreateTemp(dir, storageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp blob: %w", err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write temp blob: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close temp blob: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to replace local reservation blob: %w", err)
	}

	return nil
}
