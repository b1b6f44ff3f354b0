package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"car_finder/internal/domain"
)

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Insert records the ordered ids of one listing refresh.
func (s *SnapshotStore) Insert(ctx context.Context, takenAt time.Time, ids []int64) (int64, error) {
	query := `INSERT INTO listing_snapshots (taken_at, car_ids) VALUES ($1, $2) RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, takenAt, pq.Array(ids)).Scan(&id)
	return id, err
}

// LatestIDs returns the car ids of the most recent snapshot in received order.
func (s *SnapshotStore) LatestIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT car_ids FROM listing_snapshots ORDER BY taken_at DESC, id DESC LIMIT 1`

	var ids pq.Int64Array
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query).Scan(&ids)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []int64(ids), nil
}

// Archive keeps a history of listing refreshes.
type Archive struct {
	cars      *CarStore
	snapshots *SnapshotStore
	txManager *TransactionManager
}

func NewArchive(db *sqlx.DB) *Archive {
	return &Archive{
		cars:      NewCarStore(db),
		snapshots: NewSnapshotStore(db),
		txManager: NewTransactionManager(db),
	}
}

// SaveSnapshot stores the cars of one successful refresh atomically.
func (a *Archive) SaveSnapshot(ctx context.Context, cars []domain.Car) error {
	ids := make([]int64, len(cars))
	for i, car := range cars {
		ids[i] = car.ID
	}

	return a.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := a.cars.UpsertBatch(txCtx, cars); err != nil {
			return fmt.Errorf("upsert cars: %w", err)
		}
		if _, err := a.snapshots.Insert(txCtx, time.Now().UTC(), ids); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
}

// LatestSnapshot returns the cars of the last archived refresh in the order
// they were received. Cars missing from the cars table are skipped.
func (a *Archive) LatestSnapshot(ctx context.Context) ([]domain.Car, error) {
	ids, err := a.snapshots.LatestIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot ids: %w", err)
	}

	known, err := a.cars.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get cars: %w", err)
	}

	byID := make(map[int64]domain.Car, len(known))
	for _, car := range known {
		byID[car.ID] = car
	}

	cars := make([]domain.Car, 0, len(ids))
	for _, id := range ids {
		if car, ok := byID[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}
