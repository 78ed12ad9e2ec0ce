package repository

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/db/models/postgres/public/table"
	"basketdesk/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConstraintRepository stores one rule set per basket. Get falls back to the
// desk defaults when nothing was saved yet - constraints are optional, the
// weight-sum rule always applies.
type ConstraintRepository interface {
	Save(tx *sql.Tx, basketID uuid.UUID, constraints domain.ConstraintSet) error
	Get(basketID uuid.UUID) (*domain.ConstraintSet, error)
}

type constraintRepositoryHandler struct {
	Db *sql.DB
}

func NewConstraintRepository(db *sql.DB) ConstraintRepository {
	return constraintRepositoryHandler{Db: db}
}

func (h constraintRepositoryHandler) Save(tx *sql.Tx, basketID uuid.UUID, constraints domain.ConstraintSet) error {
	classCaps, err := json.Marshal(constraints.ClassCaps)
	if err != nil {
		return fmt.Errorf("failed to serialize class caps: %w", err)
	}
	regionCaps, err := json.Marshal(constraints.RegionCaps)
	if err != nil {
		return fmt.Errorf("failed to serialize region caps: %w", err)
	}

	m := model.BasketConstraint{
		BasketID:         basketID,
		WeightTarget:     constraints.WeightTarget,
		WeightTolerance:  constraints.WeightTolerance,
		MaxHoldings:      constraints.MaxHoldings,
		MinHoldingWeight: constraints.MinHoldingWeight,
		ClassCaps:        string(classCaps),
		RegionCaps:       string(regionCaps),
		UpdatedAt:        time.Now().UTC(),
	}

	query := table.BasketConstraint.
		INSERT(table.BasketConstraint.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.BasketConstraint.BasketID).
		DO_UPDATE(
			postgres.SET(
				table.BasketConstraint.WeightTarget.SET(table.BasketConstraint.EXCLUDED.WeightTarget),
				table.BasketConstraint.WeightTolerance.SET(table.BasketConstraint.EXCLUDED.WeightTolerance),
				table.BasketConstraint.MaxHoldings.SET(table.BasketConstraint.EXCLUDED.MaxHoldings),
				table.BasketConstraint.MinHoldingWeight.SET(table.BasketConstraint.EXCLUDED.MinHoldingWeight),
				table.BasketConstraint.ClassCaps.SET(table.BasketConstraint.EXCLUDED.ClassCaps),
				table.BasketConstraint.RegionCaps.SET(table.BasketConstraint.EXCLUDED.RegionCaps),
				table.BasketConstraint.UpdatedAt.SET(table.BasketConstraint.EXCLUDED.UpdatedAt),
			),
		)

	_, err = query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to save constraints for basket %s: %w", basketID, err)
	}

	return nil
}

func (h constraintRepositoryHandler) Get(basketID uuid.UUID) (*domain.ConstraintSet, error) {
	query := table.BasketConstraint.
		SELECT(table.BasketConstraint.AllColumns).
		WHERE(table.BasketConstraint.BasketID.EQ(postgres.UUID(basketID)))

	m := model.BasketConstraint{}
	err := query.Query(h.Db, &m)
	if errors.Is(err, qrm.ErrNoRows) {
		defaults := domain.DefaultConstraints()
		return &defaults, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get constraints for basket %s: %w", basketID, err)
	}

	classCaps := map[domain.AssetClass]decimal.Decimal{}
	if m.ClassCaps != "" {
		if err := json.Unmarshal([]byte(m.ClassCaps), &classCaps); err != nil {
			return nil, fmt.Errorf("failed to parse class caps for basket %s: %w", basketID, err)
		}
	}
	regionCaps := map[string]decimal.Decimal{}
	if m.RegionCaps != "" {
		if err := json.Unmarshal([]byte(m.RegionCaps), &regionCaps); err != nil {
			return nil, fmt.Errorf("failed to parse region caps for basket %s: %w", basketID, err)
		}
	}

	return &domain.ConstraintSet{
		WeightTarget:     m.WeightTarget,
		WeightTolerance:  m.WeightTolerance,
		ClassCaps:        classCaps,
		RegionCaps:       regionCaps,
		MaxHoldings:      m.MaxHoldings,
		MinHoldingWeight: m.MinHoldingWeight,
	}, nil
}
