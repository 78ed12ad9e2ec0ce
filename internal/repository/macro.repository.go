package repository

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/db/models/postgres/public/table"
	"basketdesk/internal/domain"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

// MacroRepository caches macro series observations (FRED) locally, same role
// as the adjusted price store for equities.
type MacroRepository interface {
	Add([]model.MacroObservation) error
	List(seriesID string, start, end time.Time) ([]domain.MacroObservation, error)
}

type macroRepositoryHandler struct {
	Db *sql.DB
}

func NewMacroRepository(db *sql.DB) MacroRepository {
	return macroRepositoryHandler{Db: db}
}

func (h macroRepositoryHandler) Add(observations []model.MacroObservation) error {
	if len(observations) == 0 {
		return nil
	}

	query := table.MacroObservation.
		INSERT(table.MacroObservation.AllColumns).
		MODELS(observations).
		ON_CONFLICT(
			table.MacroObservation.SeriesID, table.MacroObservation.Date,
		).DO_UPDATE(
		postgres.SET(
			table.MacroObservation.Value.SET(table.MacroObservation.EXCLUDED.Value),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add macro observations to db: %w", err)
	}

	return nil
}

func (h macroRepositoryHandler) List(seriesID string, start, end time.Time) ([]domain.MacroObservation, error) {
	query := table.MacroObservation.
		SELECT(table.MacroObservation.AllColumns).
		WHERE(
			postgres.AND(
				table.MacroObservation.SeriesID.EQ(postgres.String(seriesID)),
				table.MacroObservation.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.MacroObservation.Date.ASC())

	result := []model.MacroObservation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations for %s: %w", seriesID, err)
	}

	out := []domain.MacroObservation{}
	for _, m := range result {
		out = append(out, domain.MacroObservation{
			SeriesID: m.SeriesID,
			Date:     m.Date,
			Value:    m.Value,
		})
	}

	return out, nil
}
