package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"fuego/infras/otel"
	"fuego/infras/postgres"
	"fuego/internal/domains/reservation/model"
	"fuego/shared/constant"
	"fuego/shared/logger"

	"github.com/lib/pq"
)

// ErrSchemaMissing marks remote failures caused by the reservations table not
// existing yet, so the manager surface can show setup instructions instead of
// a generic offline indicator.
var ErrSchemaMissing = errors.New("reservations table does not exist")

// Reservation is the thin client over the hosted reservations table. Every
// method fails on network, auth or schema trouble; deciding what to do about
// that is the service's job.
type Reservation interface {
	GetAll(ctx context.Context) ([]model.Reservation, error)
	Insert(ctx context.Context, mod model.Reservation) (model.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const selectColumns = `id, created_at, client_name, phone, pax, "date", "time", table_type, status`

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC", selectColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.Reservation

	err := repo.db.DB.SelectContext(ctx, &models, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, wrapRemoteError("list", err)
	}

	return models, nil
}

func (repo *repositoryImpl) Insert(ctx context.Context, mod model.Reservation) (model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	// id and created_at stay server-assigned; the echoed row is authoritative.
	query := fmt.Sprintf(
		`INSERT INTO %s (client_name, phone, pax, "date", "time", table_type, status)
		 VALUES (:client_name, :phone, :pax, :date, :time, :table_type, :status)
		 RETURNING %s`,
		model.TableName, selectColumns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var inserted model.Reservation

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, wrapRemoteError("insert", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &inserted, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, wrapRemoteError("insert", err)
	}

	return inserted, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateStatus", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET status = :status WHERE id = :id AND status = :pending", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	// Zero matched rows is not an error here: the update is an idempotent
	// no-op when the id is unknown or the reservation already left pending.
	_, err := repo.db.DB.NamedExecContext(ctx, query, map[string]any{
		"id":      id,
		"status":  status,
		"pending": model.StatusPending,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return wrapRemoteError("update status", err)
	}

	return nil
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s", model.FieldID, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.DB.GetContext(ctx, &count, query)
	if err != nil {
		scope.TraceError(err)

		return 0, wrapRemoteError("count", err)
	}

	return count, nil
}

func wrapRemoteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUndefinedTable {
		return fmt.Errorf("failed to %s %s: %w: %w", op, model.EntityName, ErrSchemaMissing, err)
	}

	return fmt.Errorf("failed to %s %s: %w", op, model.EntityName, err)
}
