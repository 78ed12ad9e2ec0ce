package service

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/domain"
	"basketdesk/internal/interchange"
	"basketdesk/internal/logger"
	"basketdesk/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

type UniverseService interface {
	ImportUniverse(ctx context.Context, r io.Reader, source string, note *string) (*domain.UniverseSnapshot, error)
	GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*domain.UniverseSnapshot, error)
	ListSnapshots(ctx context.Context) ([]model.UniverseSnapshot, error)
}

type universeServiceHandler struct {
	Db                 *sql.DB
	UniverseRepository repository.UniverseRepository
	AuditLogRepository repository.AuditLogRepository
}

func NewUniverseService(
	db *sql.DB,
	universeRepository repository.UniverseRepository,
	auditLogRepository repository.AuditLogRepository,
) UniverseService {
	return universeServiceHandler{
		Db:                 db,
		UniverseRepository: universeRepository,
		AuditLogRepository: auditLogRepository,
	}
}

// ImportUniverse parses a universe CSV and writes a brand new snapshot in a
// single transaction. Snapshots are immutable: a bad file leaves no partial
// snapshot behind, and a good one never touches any earlier snapshot.
func (h universeServiceHandler) ImportUniverse(ctx context.Context, r io.Reader, source string, note *string) (*domain.UniverseSnapshot, error) {
	instruments, err := interchange.ParseUniverseCsv(r)
	if err != nil {
		return nil, err
	}

	snapshotID := uuid.New()
	snapshotModel := model.UniverseSnapshot{
		SnapshotID: snapshotID,
		Source:     source,
		Note:       note,
		CreatedAt:  time.Now().UTC(),
	}
	instrumentModels := make([]model.Instrument, 0, len(instruments))
	for _, instrument := range instruments {
		instrumentModels = append(instrumentModels, model.Instrument{
			SnapshotID:   snapshotID,
			InstrumentID: instrument.InstrumentID,
			Ticker:       instrument.Ticker,
			Name:         instrument.Name,
			AssetClass:   string(instrument.AssetClass),
			Region:       instrument.Region,
			Currency:     instrument.Currency,
			Eligible:     instrument.Eligible,
			Isin:         instrument.Isin,
			MinWeight:    instrument.MinWeight,
			MaxWeight:    instrument.MaxWeight,
			Notes:        instrument.Notes,
		})
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = h.UniverseRepository.CreateSnapshot(tx, snapshotModel, instrumentModels)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	err = h.AuditLogRepository.Add(tx, "universe_import", fmt.Sprintf(
		"snapshot %s from %s with %d instruments", snapshotID, source, len(instruments),
	))
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	logger.FromContext(ctx).Infof("imported universe snapshot %s (%d instruments)", snapshotID, len(instruments))

	return h.UniverseRepository.GetSnapshot(snapshotID)
}

func (h universeServiceHandler) GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*domain.UniverseSnapshot, error) {
	return h.UniverseRepository.GetSnapshot(snapshotID)
}

func (h universeServiceHandler) ListSnapshots(ctx context.Context) ([]model.UniverseSnapshot, error) {
	return h.UniverseRepository.ListSnapshots()
}
