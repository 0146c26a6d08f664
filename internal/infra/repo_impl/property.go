package repo_impl

import (
	"context"
	"encoding/json"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PropertyQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
}

type PropertyRepository struct {
	queries PropertyQueries
	db      sqlc.DBTX
}

func NewPropertyRepository(queries *sqlc.Queries, db sqlc.DBTX) *PropertyRepository {
	return &PropertyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PropertyRM, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	var policy property.CancellationPolicy
	if len(row.CancellationPolicy) > 0 {
		if err := json.Unmarshal(row.CancellationPolicy, &policy); err != nil {
			return nil, infra.WrapRepoErr("failed to decode cancellation policy", err)
		}
	}

	return &readmodel.PropertyRM{
		ID:             row.ID,
		Name:           row.Name,
		BaseGuests:     row.BaseGuests,
		MaxGuests:      row.MaxGuests,
		WeekdayRate:    row.WeekdayRate,
		WeekendRate:    row.WeekendRate,
		ExtraAdultRate: row.ExtraAdultRate,
		ExtraChildRate: row.ExtraChildRate,
		VegMealRate:    row.VegMealRate,
		NonVegMealRate: row.NonvegMealRate,
		Policy:         policy,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
