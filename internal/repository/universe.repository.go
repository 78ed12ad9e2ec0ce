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

// UniverseRepository persists immutable snapshot catalogs. There is
// deliberately no update method - a snapshot is superseded by creating a new
// one, never edited in place.
type UniverseRepository interface {
	CreateSnapshot(tx *sql.Tx, snapshot model.UniverseSnapshot, instruments []model.Instrument) (*model.UniverseSnapshot, error)
	GetSnapshot(snapshotID uuid.UUID) (*domain.UniverseSnapshot, error)
	ListSnapshots() ([]model.UniverseSnapshot, error)
}

type universeRepositoryHandler struct {
	Db *sql.DB
}

func NewUniverseRepository(db *sql.DB) UniverseRepository {
	return universeRepositoryHandler{Db: db}
}

func (h universeRepositoryHandler) CreateSnapshot(tx *sql.Tx, snapshot model.UniverseSnapshot, instruments []model.Instrument) (*model.UniverseSnapshot, error) {
	if len(instruments) == 0 {
		return nil, fmt.Errorf("cannot create snapshot with 0 instruments")
	}

	snapshot.CreatedAt = time.Now().UTC()
	query := table.UniverseSnapshot.
		INSERT(table.UniverseSnapshot.AllColumns).
		MODEL(snapshot).
		RETURNING(table.UniverseSnapshot.AllColumns)

	out := model.UniverseSnapshot{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert universe snapshot: %w", err)
	}

	for i := range instruments {
		instruments[i].SnapshotID = out.SnapshotID
	}
	insert := table.Instrument.
		INSERT(table.Instrument.AllColumns).
		MODELS(instruments)

	_, err = insert.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d instruments for snapshot %s: %w", len(instruments), out.SnapshotID, err)
	}

	return &out, nil
}

func (h universeRepositoryHandler) GetSnapshot(snapshotID uuid.UUID) (*domain.UniverseSnapshot, error) {
	query := table.UniverseSnapshot.
		SELECT(table.UniverseSnapshot.AllColumns).
		WHERE(table.UniverseSnapshot.SnapshotID.EQ(postgres.UUID(snapshotID)))

	snapshot := model.UniverseSnapshot{}
	err := query.Query(h.Db, &snapshot)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "universe snapshot", ID: snapshotID.String()}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get universe snapshot %s: %w", snapshotID, err)
	}

	instrumentQuery := table.Instrument.
		SELECT(table.Instrument.AllColumns).
		WHERE(table.Instrument.SnapshotID.EQ(postgres.UUID(snapshotID))).
		ORDER_BY(table.Instrument.InstrumentID.ASC())

	instruments := []model.Instrument{}
	err = instrumentQuery.Query(h.Db, &instruments)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments for snapshot %s: %w", snapshotID, err)
	}

	out := &domain.UniverseSnapshot{
		SnapshotID:  snapshot.SnapshotID,
		Source:      snapshot.Source,
		Note:        snapshot.Note,
		CreatedAt:   snapshot.CreatedAt,
		Instruments: map[string]domain.Instrument{},
	}
	for _, m := range instruments {
		instrument, err := instrumentFromModel(m)
		if err != nil {
			return nil, err
		}
		out.Instruments[m.InstrumentID] = *instrument
	}

	return out, nil
}

func (h universeRepositoryHandler) ListSnapshots() ([]model.UniverseSnapshot, error) {
	query := table.UniverseSnapshot.
		SELECT(table.UniverseSnapshot.AllColumns).
		ORDER_BY(table.UniverseSnapshot.CreatedAt.DESC())

	out := []model.UniverseSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe snapshots: %w", err)
	}

	return out, nil
}

func instrumentFromModel(m model.Instrument) (*domain.Instrument, error) {
	assetClass, err := domain.NewAssetClass(m.AssetClass)
	if err != nil {
		return nil, fmt.Errorf("instrument %s has invalid asset class: %w", m.InstrumentID, err)
	}

	return &domain.Instrument{
		InstrumentID: m.InstrumentID,
		Ticker:       m.Ticker,
		Name:         m.Name,
		AssetClass:   *assetClass,
		Region:       m.Region,
		Currency:     m.Currency,
		Eligible:     m.Eligible,
		Isin:         m.Isin,
		MinWeight:    m.MinWeight,
		MaxWeight:    m.MaxWeight,
		Notes:        m.Notes,
	}, nil
}
