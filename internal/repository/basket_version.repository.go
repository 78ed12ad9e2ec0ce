package repository

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/db/models/postgres/public/table"
	"basketdesk/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// BasketVersionRepository is append-only: versions are inserted, listed and
// read, never updated or deleted. A version and its holdings are written in
// the caller's transaction so a rejected commit persists nothing.
type BasketVersionRepository interface {
	Add(tx *sql.Tx, version model.BasketVersion, holdings []model.BasketHolding) (*model.BasketVersion, error)
	GetLatestVersionNumber(basketID uuid.UUID) (int32, error)
	GetVersion(basketID uuid.UUID, versionNumber int32) (*domain.BasketVersion, error)
	ListVersions(basketID uuid.UUID) ([]model.BasketVersion, error)
}

type basketVersionRepositoryHandler struct {
	Db *sql.DB
}

func NewBasketVersionRepository(db *sql.DB) BasketVersionRepository {
	return basketVersionRepositoryHandler{Db: db}
}

func (h basketVersionRepositoryHandler) Add(tx *sql.Tx, version model.BasketVersion, holdings []model.BasketHolding) (*model.BasketVersion, error) {
	version.CreatedAt = time.Now().UTC()
	query := table.BasketVersion.
		INSERT(table.BasketVersion.AllColumns).
		MODEL(version).
		RETURNING(table.BasketVersion.AllColumns)

	out := model.BasketVersion{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert basket version: %w", err)
	}

	for i := range holdings {
		holdings[i].BasketID = out.BasketID
		holdings[i].VersionNumber = out.VersionNumber
	}
	insert := table.BasketHolding.
		INSERT(table.BasketHolding.AllColumns).
		MODELS(holdings)

	_, err = insert.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d holdings for basket %s v%d: %w", len(holdings), out.BasketID, out.VersionNumber, err)
	}

	return &out, nil
}

func (h basketVersionRepositoryHandler) GetLatestVersionNumber(basketID uuid.UUID) (int32, error) {
	query := table.BasketVersion.
		SELECT(table.BasketVersion.VersionNumber).
		WHERE(table.BasketVersion.BasketID.EQ(postgres.UUID(basketID))).
		ORDER_BY(table.BasketVersion.VersionNumber.DESC()).
		LIMIT(1)

	type BasketVersion struct {
		VersionNumber int32
	}

	var out BasketVersion
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		// no versions committed yet
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("could not get latest version for basket %s: %w", basketID, err)
	}

	return out.VersionNumber, nil
}

func (h basketVersionRepositoryHandler) GetVersion(basketID uuid.UUID, versionNumber int32) (*domain.BasketVersion, error) {
	query := table.BasketVersion.
		SELECT(table.BasketVersion.AllColumns).
		WHERE(
			postgres.AND(
				table.BasketVersion.BasketID.EQ(postgres.UUID(basketID)),
				table.BasketVersion.VersionNumber.EQ(postgres.Int32(versionNumber)),
			),
		)

	version := model.BasketVersion{}
	err := query.Query(h.Db, &version)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "basket version", ID: fmt.Sprintf("%s/v%d", basketID, versionNumber)}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get basket %s v%d: %w", basketID, versionNumber, err)
	}

	holdingsQuery := table.BasketHolding.
		SELECT(table.BasketHolding.AllColumns).
		WHERE(
			postgres.AND(
				table.BasketHolding.BasketID.EQ(postgres.UUID(basketID)),
				table.BasketHolding.VersionNumber.EQ(postgres.Int32(versionNumber)),
			),
		).
		ORDER_BY(table.BasketHolding.InstrumentID.ASC())

	holdings := []model.BasketHolding{}
	err = holdingsQuery.Query(h.Db, &holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for basket %s v%d: %w", basketID, versionNumber, err)
	}

	out := &domain.BasketVersion{
		BasketID:      version.BasketID,
		VersionNumber: version.VersionNumber,
		Note:          version.Note,
		CreatedAt:     version.CreatedAt,
		Holdings:      []domain.Holding{},
	}
	for _, holding := range holdings {
		out.Holdings = append(out.Holdings, domain.Holding{
			InstrumentID: holding.InstrumentID,
			Weight:       holding.Weight,
		})
	}

	return out, nil
}

func (h basketVersionRepositoryHandler) ListVersions(basketID uuid.UUID) ([]model.BasketVersion, error) {
	query := table.BasketVersion.
		SELECT(table.BasketVersion.AllColumns).
		WHERE(table.BasketVersion.BasketID.EQ(postgres.UUID(basketID))).
		ORDER_BY(table.BasketVersion.VersionNumber.ASC())

	out := []model.BasketVersion{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions for basket %s: %w", basketID, err)
	}

	return out, nil
}
