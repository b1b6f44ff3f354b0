package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"car_finder/internal/domain"
)

const carColumns = 11

type CarStore struct {
	db *sqlx.DB
}

func NewCarStore(db *sqlx.DB) *CarStore {
	return &CarStore{db: db}
}

// UpsertBatch inserts or refreshes every car in one statement and bumps
// last_seen_at for cars already known.
func (s *CarStore) UpsertBatch(ctx context.Context, cars []domain.Car) error {
	if len(cars) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO cars (
		id, year, make, model, price, mileage, location, url, vin, source_site, scraped_timestamp
	) VALUES `)
	valueArgs := make([]interface{}, 0, len(cars)*carColumns)

	for i, car := range cars {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 1; j <= carColumns; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*carColumns + j))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			car.ID,
			car.Year,
			car.Make,
			car.Model,
			car.Price,
			car.Mileage,
			car.Location,
			car.URL,
			car.VIN,
			car.SourceSite,
			car.ScrapedTimestamp,
		)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		year = EXCLUDED.year,
		make = EXCLUDED.make,
		model = EXCLUDED.model,
		price = EXCLUDED.price,
		mileage = EXCLUDED.mileage,
		location = EXCLUDED.location,
		url = EXCLUDED.url,
		vin = EXCLUDED.vin,
		source_site = EXCLUDED.source_site,
		scraped_timestamp = EXCLUDED.scraped_timestamp,
		last_seen_at = NOW()`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// GetByIDs returns the known cars among ids, ordered by id.
func (s *CarStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Car, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, year, make, model, price, mileage, location, url, vin, source_site, scraped_timestamp
		FROM cars
		WHERE id = ANY($1)
		ORDER BY id`

	var cars []domain.Car
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &cars, query, pq.Array(ids))
	return cars, err
}
