package service

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/domain"
	mock_repository "basketdesk/internal/repository/mocks"
	"basketdesk/internal/suggestion"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestSnapshot(snapshotID uuid.UUID) *domain.UniverseSnapshot {
	return &domain.UniverseSnapshot{
		SnapshotID: snapshotID,
		Source:     "test",
		CreatedAt:  time.Now().UTC(),
		Instruments: map[string]domain.Instrument{
			"US-EQ-SPY": {
				InstrumentID: "US-EQ-SPY",
				Ticker:       "SPY",
				AssetClass:   domain.AssetClass_Equity,
				Region:       "US",
				Currency:     "USD",
				Eligible:     true,
			},
			"US-RATES-AGG": {
				InstrumentID: "US-RATES-AGG",
				Ticker:       "AGG",
				AssetClass:   domain.AssetClass_Rates,
				Region:       "US",
				Currency:     "USD",
				Eligible:     true,
			},
		},
	}
}

func TestCommit(t *testing.T) {
	t.Run("stale base version is rejected and persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		basketRepository := mock_repository.NewMockBasketRepository(ctrl)
		versionRepository := mock_repository.NewMockBasketVersionRepository(ctrl)

		basketID := uuid.New()
		snapshotID := uuid.New()

		basketRepository.EXPECT().Get(basketID).Return(&model.Basket{
			BasketID:   basketID,
			SnapshotID: snapshotID,
			Name:       "test",
		}, nil)
		versionRepository.EXPECT().GetLatestVersionNumber(basketID).Return(int32(4), nil)

		handler := &basketServiceHandler{
			BasketRepository:        basketRepository,
			BasketVersionRepository: versionRepository,
			commitLocks:             map[uuid.UUID]*sync.Mutex{},
		}

		_, err := handler.Commit(context.Background(), CommitInput{
			BasketID:    basketID,
			Holdings:    []domain.Holding{{InstrumentID: "US-EQ-SPY", Weight: dec("1")}},
			BaseVersion: 3,
		})

		concurrentErr, ok := err.(domain.ConcurrentModificationError)
		require.True(t, ok)
		require.Equal(t, int32(3), concurrentErr.BaseVersion)
		require.Equal(t, int32(4), concurrentErr.LatestVersion)
	})

	t.Run("concurrent commits to the same basket are serialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		basketRepository := mock_repository.NewMockBasketRepository(ctrl)
		versionRepository := mock_repository.NewMockBasketVersionRepository(ctrl)

		basketID := uuid.New()
		snapshotID := uuid.New()

		basketRepository.EXPECT().Get(basketID).Return(&model.Basket{
			BasketID:   basketID,
			SnapshotID: snapshotID,
			Name:       "test",
		}, nil).Times(2)

		// the version read sits inside the per-basket critical section; a
		// second committer entering before the first leaves means the lock
		// failed and both could number the same version
		var inCriticalSection int32
		var overlapped int32
		versionRepository.EXPECT().GetLatestVersionNumber(basketID).DoAndReturn(func(uuid.UUID) (int32, error) {
			if !atomic.CompareAndSwapInt32(&inCriticalSection, 0, 1) {
				atomic.StoreInt32(&overlapped, 1)
			}
			time.Sleep(10 * time.Millisecond)
			atomic.StoreInt32(&inCriticalSection, 0)
			return 4, nil
		}).Times(2)

		handler := &basketServiceHandler{
			BasketRepository:        basketRepository,
			BasketVersionRepository: versionRepository,
			commitLocks:             map[uuid.UUID]*sync.Mutex{},
		}

		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				_, err := handler.Commit(context.Background(), CommitInput{
					BasketID:    basketID,
					Holdings:    []domain.Holding{{InstrumentID: "US-EQ-SPY", Weight: dec("1")}},
					BaseVersion: 3,
				})
				errs <- err
			}()
		}
		for i := 0; i < 2; i++ {
			err := <-errs
			_, ok := err.(domain.ConcurrentModificationError)
			require.True(t, ok)
		}
		require.Equal(t, int32(0), atomic.LoadInt32(&overlapped))
	})

	t.Run("constraint violations are rejected with the full list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		basketRepository := mock_repository.NewMockBasketRepository(ctrl)
		versionRepository := mock_repository.NewMockBasketVersionRepository(ctrl)
		universeRepository := mock_repository.NewMockUniverseRepository(ctrl)
		constraintRepository := mock_repository.NewMockConstraintRepository(ctrl)

		basketID := uuid.New()
		snapshotID := uuid.New()

		basketRepository.EXPECT().Get(basketID).Return(&model.Basket{
			BasketID:   basketID,
			SnapshotID: snapshotID,
			Name:       "test",
		}, nil)
		versionRepository.EXPECT().GetLatestVersionNumber(basketID).Return(int32(0), nil)
		universeRepository.EXPECT().GetSnapshot(snapshotID).Return(newTestSnapshot(snapshotID), nil)
		constraints := domain.DefaultConstraints()
		constraintRepository.EXPECT().Get(basketID).Return(&constraints, nil)

		handler := &basketServiceHandler{
			BasketRepository:        basketRepository,
			BasketVersionRepository: versionRepository,
			UniverseRepository:      universeRepository,
			ConstraintRepository:    constraintRepository,
			commitLocks:             map[uuid.UUID]*sync.Mutex{},
		}

		// unknown instrument AND bad total - both must be reported, and no
		// write may happen (no tx expectations are registered)
		_, err := handler.Commit(context.Background(), CommitInput{
			BasketID: basketID,
			Holdings: []domain.Holding{
				{InstrumentID: "US-EQ-XXX", Weight: dec("0.5")},
			},
			BaseVersion: 0,
		})

		constraintErr, ok := err.(domain.ConstraintViolationError)
		require.True(t, ok)
		require.Len(t, constraintErr.Result.Violations, 2)
	})

	t.Run("missing basket surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		basketRepository := mock_repository.NewMockBasketRepository(ctrl)

		basketID := uuid.New()
		basketRepository.EXPECT().Get(basketID).Return(nil, domain.NotFoundError{
			Resource: "basket",
			ID:       basketID.String(),
		})

		handler := &basketServiceHandler{
			BasketRepository: basketRepository,
			commitLocks:      map[uuid.UUID]*sync.Mutex{},
		}

		_, err := handler.Commit(context.Background(), CommitInput{
			BasketID:    basketID,
			BaseVersion: 0,
		})

		_, ok := err.(domain.NotFoundError)
		require.True(t, ok)
	})
}

func TestCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	versionRepository := mock_repository.NewMockBasketVersionRepository(ctrl)

	basketID := uuid.New()
	versionRepository.EXPECT().GetVersion(basketID, int32(1)).Return(&domain.BasketVersion{
		BasketID:      basketID,
		VersionNumber: 1,
		Holdings: []domain.Holding{
			{InstrumentID: "US-EQ-SPY", Weight: dec("0.6")},
			{InstrumentID: "US-RATES-AGG", Weight: dec("0.4")},
		},
	}, nil)
	versionRepository.EXPECT().GetVersion(basketID, int32(2)).Return(&domain.BasketVersion{
		BasketID:      basketID,
		VersionNumber: 2,
		Holdings: []domain.Holding{
			{InstrumentID: "US-EQ-SPY", Weight: dec("0.5")},
			{InstrumentID: "GLB-COMM-GLD", Weight: dec("0.5")},
		},
	}, nil)

	handler := &basketServiceHandler{
		BasketVersionRepository: versionRepository,
		commitLocks:             map[uuid.UUID]*sync.Mutex{},
	}

	diff, err := handler.Compare(context.Background(), basketID, 1, 2, nil)
	require.NoError(t, err)

	require.Len(t, diff.Added, 1)
	require.Equal(t, "GLB-COMM-GLD", diff.Added[0].InstrumentID)
	require.Len(t, diff.Removed, 1)
	require.Equal(t, "US-RATES-AGG", diff.Removed[0].InstrumentID)
	require.Len(t, diff.WeightDeltas, 1)
	require.Equal(t, "US-EQ-SPY", diff.WeightDeltas[0].InstrumentID)
	require.True(t, diff.WeightDeltas[0].Delta.Equal(dec("-0.1")))
	require.Nil(t, diff.CompositeDelta)
}

func TestApplySuggestionValidatesThroughCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	basketRepository := mock_repository.NewMockBasketRepository(ctrl)
	versionRepository := mock_repository.NewMockBasketVersionRepository(ctrl)
	constraintRepository := mock_repository.NewMockConstraintRepository(ctrl)

	basketID := uuid.New()
	snapshotID := uuid.New()
	constraints := domain.DefaultConstraints()

	versionRepository.EXPECT().GetVersion(basketID, int32(2)).Return(&domain.BasketVersion{
		BasketID:      basketID,
		VersionNumber: 2,
		Holdings: []domain.Holding{
			{InstrumentID: "US-EQ-SPY", Weight: dec("1")},
		},
	}, nil)
	constraintRepository.EXPECT().Get(basketID).Return(&constraints, nil)

	// the commit path discovers the suggestion's base version is stale
	basketRepository.EXPECT().Get(basketID).Return(&model.Basket{
		BasketID:   basketID,
		SnapshotID: snapshotID,
		Name:       "test",
	}, nil)
	versionRepository.EXPECT().GetLatestVersionNumber(basketID).Return(int32(3), nil)

	handler := &basketServiceHandler{
		BasketRepository:        basketRepository,
		BasketVersionRepository: versionRepository,
		ConstraintRepository:    constraintRepository,
		SuggestionEngine:        suggestion.NewEngine(),
		commitLocks:             map[uuid.UUID]*sync.Mutex{},
	}

	_, err := handler.ApplySuggestion(context.Background(), domain.Suggestion{
		BasketID:    basketID,
		BaseVersion: 2,
		Actions: []domain.SuggestedAction{{
			Type:           domain.SuggestedAction_Add,
			InstrumentID:   "US-RATES-AGG",
			Delta:          dec("0.02"),
			ProposedWeight: dec("0.02"),
		}},
	})

	_, ok := err.(domain.ConcurrentModificationError)
	require.True(t, ok)
}
