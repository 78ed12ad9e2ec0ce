package service

import (
	"basketdesk/internal/calculator"
	"basketdesk/internal/constraint"
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/domain"
	"basketdesk/internal/interchange"
	"basketdesk/internal/logger"
	"basketdesk/internal/repository"
	"basketdesk/internal/suggestion"
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBasketInput struct {
	SnapshotID  uuid.UUID
	Name        string
	Description *string
}

type CommitInput struct {
	BasketID uuid.UUID
	Holdings []domain.Holding
	Note     *string
	// the version the caller based their edit on; 0 for the first commit
	BaseVersion int32
}

type BasketService interface {
	CreateBasket(ctx context.Context, in CreateBasketInput) (*domain.Basket, error)
	GetBasket(ctx context.Context, basketID uuid.UUID) (*domain.Basket, error)
	ListBaskets(ctx context.Context) ([]model.Basket, error)

	Commit(ctx context.Context, in CommitInput) (*domain.BasketVersion, error)
	ListVersions(ctx context.Context, basketID uuid.UUID) ([]model.BasketVersion, error)
	GetVersion(ctx context.Context, basketID uuid.UUID, versionNumber int32) (*domain.BasketVersion, error)
	Compare(ctx context.Context, basketID uuid.UUID, fromVersion, toVersion int32, scores []domain.SignalScore) (*domain.VersionDiff, error)
	VersionPerformance(ctx context.Context, basketID uuid.UUID, versionNumber int32, start, end time.Time) (*calculator.PerformanceResult, error)

	SaveConstraints(ctx context.Context, basketID uuid.UUID, constraints domain.ConstraintSet) error
	GetConstraints(ctx context.Context, basketID uuid.UUID) (*domain.ConstraintSet, error)

	Suggest(ctx context.Context, basketID uuid.UUID, asOf time.Time) (*domain.Suggestion, error)
	ApplySuggestion(ctx context.Context, s domain.Suggestion) (*domain.BasketVersion, error)

	ExportVersionCsv(ctx context.Context, w io.Writer, basketID uuid.UUID, versionNumber int32) error
	ImportHoldingsCsv(ctx context.Context, basketID uuid.UUID, r io.Reader, note *string, baseVersion int32) (*domain.BasketVersion, error)
}

type basketServiceHandler struct {
	Db                      *sql.DB
	BasketRepository        repository.BasketRepository
	BasketVersionRepository repository.BasketVersionRepository
	ConstraintRepository    repository.ConstraintRepository
	UniverseRepository      repository.UniverseRepository
	AuditLogRepository      repository.AuditLogRepository
	AdjPriceRepository      repository.AdjustedPriceRepository
	SignalService           SignalService
	SuggestionEngine        suggestion.Engine

	// serializes commits per basket so concurrent writers cannot both read
	// the same latest version and race to number their new version
	commitLocksMu sync.Mutex
	commitLocks   map[uuid.UUID]*sync.Mutex
}

func NewBasketService(
	db *sql.DB,
	basketRepository repository.BasketRepository,
	basketVersionRepository repository.BasketVersionRepository,
	constraintRepository repository.ConstraintRepository,
	universeRepository repository.UniverseRepository,
	auditLogRepository repository.AuditLogRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
	signalService SignalService,
	suggestionEngine suggestion.Engine,
) BasketService {
	return &basketServiceHandler{
		Db:                      db,
		BasketRepository:        basketRepository,
		BasketVersionRepository: basketVersionRepository,
		ConstraintRepository:    constraintRepository,
		UniverseRepository:      universeRepository,
		AuditLogRepository:      auditLogRepository,
		AdjPriceRepository:      adjPriceRepository,
		SignalService:           signalService,
		SuggestionEngine:        suggestionEngine,
		commitLocks:             map[uuid.UUID]*sync.Mutex{},
	}
}

func (h *basketServiceHandler) commitLock(basketID uuid.UUID) *sync.Mutex {
	h.commitLocksMu.Lock()
	defer h.commitLocksMu.Unlock()
	lock, ok := h.commitLocks[basketID]
	if !ok {
		lock = &sync.Mutex{}
		h.commitLocks[basketID] = lock
	}
	return lock
}

// CreateBasket binds a new, empty basket to one universe snapshot. The
// binding is permanent; holdings arrive through commits.
func (h *basketServiceHandler) CreateBasket(ctx context.Context, in CreateBasketInput) (*domain.Basket, error) {
	// ensure the snapshot exists before binding to it
	_, err := h.UniverseRepository.GetSnapshot(in.SnapshotID)
	if err != nil {
		return nil, err
	}

	basketModel := model.Basket{
		BasketID:    uuid.New(),
		SnapshotID:  in.SnapshotID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = h.BasketRepository.Add(tx, basketModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create basket: %w", err)
	}
	err = h.AuditLogRepository.Add(tx, "basket_create", fmt.Sprintf(
		"basket %s (%s) bound to snapshot %s", basketModel.BasketID, in.Name, in.SnapshotID,
	))
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit basket: %w", err)
	}

	return basketFromModel(basketModel), nil
}

func (h *basketServiceHandler) GetBasket(ctx context.Context, basketID uuid.UUID) (*domain.Basket, error) {
	basketModel, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, err
	}
	return basketFromModel(*basketModel), nil
}

func (h *basketServiceHandler) ListBaskets(ctx context.Context) ([]model.Basket, error) {
	return h.BasketRepository.List()
}

// Commit appends a new version. The proposed holdings are re-validated
// against the basket's snapshot and constraint set no matter where they came
// from; a failed validation persists nothing and reports every violation. A
// stale BaseVersion is rejected so two editors can never silently clobber
// each other.
func (h *basketServiceHandler) Commit(ctx context.Context, in CommitInput) (*domain.BasketVersion, error) {
	lock := h.commitLock(in.BasketID)
	lock.Lock()
	defer lock.Unlock()

	basketModel, err := h.BasketRepository.Get(in.BasketID)
	if err != nil {
		return nil, err
	}

	latest, err := h.BasketVersionRepository.GetLatestVersionNumber(in.BasketID)
	if err != nil {
		return nil, err
	}
	if in.BaseVersion != latest {
		return nil, domain.ConcurrentModificationError{
			BasketID:      in.BasketID,
			BaseVersion:   in.BaseVersion,
			LatestVersion: latest,
		}
	}

	snapshot, err := h.UniverseRepository.GetSnapshot(basketModel.SnapshotID)
	if err != nil {
		return nil, err
	}
	constraints, err := h.ConstraintRepository.Get(in.BasketID)
	if err != nil {
		return nil, err
	}

	result := constraint.Validate(*snapshot, in.Holdings, *constraints)
	if !result.IsValid {
		return nil, domain.ConstraintViolationError{Result: result}
	}

	versionModel := model.BasketVersion{
		BasketID:      in.BasketID,
		VersionNumber: latest + 1,
		Note:          in.Note,
		CreatedAt:     time.Now().UTC(),
	}
	holdings := make([]domain.Holding, len(in.Holdings))
	copy(holdings, in.Holdings)
	domain.SortHoldings(holdings)
	holdingModels := make([]model.BasketHolding, 0, len(holdings))
	for _, holding := range holdings {
		holdingModels = append(holdingModels, model.BasketHolding{
			BasketID:      in.BasketID,
			VersionNumber: versionModel.VersionNumber,
			InstrumentID:  holding.InstrumentID,
			Weight:        holding.Weight,
		})
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = h.BasketVersionRepository.Add(tx, versionModel, holdingModels)
	if err != nil {
		return nil, fmt.Errorf("failed to add version: %w", err)
	}
	err = h.AuditLogRepository.Add(tx, "basket_commit", fmt.Sprintf(
		"basket %s version %d with %d holdings", in.BasketID, versionModel.VersionNumber, len(holdings),
	))
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit version: %w", err)
	}

	logger.FromContext(ctx).Infof("committed basket %s version %d", in.BasketID, versionModel.VersionNumber)

	return &domain.BasketVersion{
		BasketID:      versionModel.BasketID,
		VersionNumber: versionModel.VersionNumber,
		Note:          versionModel.Note,
		CreatedAt:     versionModel.CreatedAt,
		Holdings:      holdings,
	}, nil
}

func (h *basketServiceHandler) ListVersions(ctx context.Context, basketID uuid.UUID) ([]model.BasketVersion, error) {
	_, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, err
	}
	return h.BasketVersionRepository.ListVersions(basketID)
}

func (h *basketServiceHandler) GetVersion(ctx context.Context, basketID uuid.UUID, versionNumber int32) (*domain.BasketVersion, error) {
	return h.BasketVersionRepository.GetVersion(basketID, versionNumber)
}

// Compare diffs two versions of the same basket. When signal scores are
// supplied the diff also carries the composite delta between the two sets;
// without scores that field stays unset.
func (h *basketServiceHandler) Compare(ctx context.Context, basketID uuid.UUID, fromVersion, toVersion int32, scores []domain.SignalScore) (*domain.VersionDiff, error) {
	from, err := h.BasketVersionRepository.GetVersion(basketID, fromVersion)
	if err != nil {
		return nil, err
	}
	to, err := h.BasketVersionRepository.GetVersion(basketID, toVersion)
	if err != nil {
		return nil, err
	}

	fromWeights := map[string]domain.Holding{}
	for _, holding := range from.Holdings {
		fromWeights[holding.InstrumentID] = holding
	}
	toWeights := map[string]domain.Holding{}
	for _, holding := range to.Holdings {
		toWeights[holding.InstrumentID] = holding
	}

	diff := &domain.VersionDiff{
		BasketID:     basketID,
		FromVersion:  fromVersion,
		ToVersion:    toVersion,
		Added:        []domain.Holding{},
		Removed:      []domain.Holding{},
		WeightDeltas: []domain.WeightDelta{},
	}

	for _, holding := range to.Holdings {
		old, held := fromWeights[holding.InstrumentID]
		if !held {
			diff.Added = append(diff.Added, holding)
			continue
		}
		if !old.Weight.Equal(holding.Weight) {
			diff.WeightDeltas = append(diff.WeightDeltas, domain.WeightDelta{
				InstrumentID: holding.InstrumentID,
				OldWeight:    old.Weight,
				NewWeight:    holding.Weight,
				Delta:        holding.Weight.Sub(old.Weight),
			})
		}
	}
	for _, holding := range from.Holdings {
		if _, held := toWeights[holding.InstrumentID]; !held {
			diff.Removed = append(diff.Removed, holding)
		}
	}

	if len(scores) > 0 {
		scoresByInstrument := map[string]domain.SignalScore{}
		for _, score := range scores {
			scoresByInstrument[score.InstrumentID] = score
		}
		delta := weightedComposite(to.Holdings, scoresByInstrument) - weightedComposite(from.Holdings, scoresByInstrument)
		diff.CompositeDelta = &delta
	}

	return diff, nil
}

// VersionPerformance prices one committed version over stored history. The
// committed weights are held fixed, so the number answers "how would this
// exact mix have done", not "how did the live basket do".
func (h *basketServiceHandler) VersionPerformance(ctx context.Context, basketID uuid.UUID, versionNumber int32, start, end time.Time) (*calculator.PerformanceResult, error) {
	basketModel, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, err
	}
	version, err := h.BasketVersionRepository.GetVersion(basketID, versionNumber)
	if err != nil {
		return nil, err
	}
	snapshot, err := h.UniverseRepository.GetSnapshot(basketModel.SnapshotID)
	if err != nil {
		return nil, err
	}

	weights := map[string]decimal.Decimal{}
	prices := map[string][]domain.AssetPrice{}
	for _, holding := range version.Holdings {
		instrument, ok := snapshot.Get(holding.InstrumentID)
		if !ok {
			return nil, fmt.Errorf("instrument %s not in snapshot %s", holding.InstrumentID, snapshot.SnapshotID)
		}
		weights[instrument.Ticker] = holding.Weight

		series, err := h.AdjPriceRepository.List(instrument.Ticker, start, end)
		if err != nil {
			return nil, err
		}
		prices[instrument.Ticker] = series
	}

	return calculator.CalculateBasketMetrics(weights, prices, start, end)
}

func (h *basketServiceHandler) SaveConstraints(ctx context.Context, basketID uuid.UUID, constraints domain.ConstraintSet) error {
	_, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.ConstraintRepository.Save(tx, basketID, constraints)
	if err != nil {
		return fmt.Errorf("failed to save constraints: %w", err)
	}
	err = h.AuditLogRepository.Add(tx, "constraints_update", fmt.Sprintf(
		"basket %s constraint set replaced", basketID,
	))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (h *basketServiceHandler) GetConstraints(ctx context.Context, basketID uuid.UUID) (*domain.ConstraintSet, error) {
	_, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, err
	}
	return h.ConstraintRepository.Get(basketID)
}

// Suggest scores the basket's universe as of the given date and runs the
// suggestion engine against the latest version. The result is advisory;
// nothing is persisted until the caller applies it.
func (h *basketServiceHandler) Suggest(ctx context.Context, basketID uuid.UUID, asOf time.Time) (*domain.Suggestion, error) {
	basketModel, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, err
	}
	latest, err := h.BasketVersionRepository.GetLatestVersionNumber(basketID)
	if err != nil {
		return nil, err
	}
	if latest == 0 {
		return nil, fmt.Errorf("basket %s has no committed version to suggest against", basketID)
	}
	baseVersion, err := h.BasketVersionRepository.GetVersion(basketID, latest)
	if err != nil {
		return nil, err
	}

	snapshot, err := h.UniverseRepository.GetSnapshot(basketModel.SnapshotID)
	if err != nil {
		return nil, err
	}
	constraints, err := h.ConstraintRepository.Get(basketID)
	if err != nil {
		return nil, err
	}

	scores, err := h.SignalService.ComputeScores(ctx, basketModel.SnapshotID, asOf)
	if err != nil {
		return nil, err
	}

	return h.SuggestionEngine.Propose(suggestion.ProposeInput{
		Basket:      *basketFromModel(*basketModel),
		BaseVersion: *baseVersion,
		Snapshot:    *snapshot,
		Constraints: *constraints,
		Scores:      scores,
	})
}

// ApplySuggestion materializes a proposal into a complete holdings set and
// commits it through the normal path, so stale base versions and constraint
// violations are caught exactly as they would be for a manual edit.
func (h *basketServiceHandler) ApplySuggestion(ctx context.Context, s domain.Suggestion) (*domain.BasketVersion, error) {
	base, err := h.BasketVersionRepository.GetVersion(s.BasketID, s.BaseVersion)
	if err != nil {
		return nil, err
	}
	constraints, err := h.ConstraintRepository.Get(s.BasketID)
	if err != nil {
		return nil, err
	}

	holdings := suggestion.Materialize(base.Holdings, s.Actions, constraints.WeightTarget)

	note := "applied suggestion"
	return h.Commit(ctx, CommitInput{
		BasketID:    s.BasketID,
		Holdings:    holdings,
		Note:        &note,
		BaseVersion: s.BaseVersion,
	})
}

func (h *basketServiceHandler) ExportVersionCsv(ctx context.Context, w io.Writer, basketID uuid.UUID, versionNumber int32) error {
	basketModel, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return err
	}
	version, err := h.BasketVersionRepository.GetVersion(basketID, versionNumber)
	if err != nil {
		return err
	}
	snapshot, err := h.UniverseRepository.GetSnapshot(basketModel.SnapshotID)
	if err != nil {
		return err
	}

	return interchange.WriteBasketCsv(w, *snapshot, version.Holdings)
}

func (h *basketServiceHandler) ImportHoldingsCsv(ctx context.Context, basketID uuid.UUID, r io.Reader, note *string, baseVersion int32) (*domain.BasketVersion, error) {
	holdings, err := interchange.ParseBasketCsv(r)
	if err != nil {
		return nil, err
	}

	return h.Commit(ctx, CommitInput{
		BasketID:    basketID,
		Holdings:    holdings,
		Note:        note,
		BaseVersion: baseVersion,
	})
}

func basketFromModel(m model.Basket) *domain.Basket {
	return &domain.Basket{
		BasketID:    m.BasketID,
		SnapshotID:  m.SnapshotID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func weightedComposite(holdings []domain.Holding, scores map[string]domain.SignalScore) float64 {
	totalWeight := 0.0
	weighted := 0.0
	for _, holding := range holdings {
		w := holding.Weight.InexactFloat64()
		totalWeight += w
		if score, ok := scores[holding.InstrumentID]; ok {
			weighted += w * score.Composite
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}
