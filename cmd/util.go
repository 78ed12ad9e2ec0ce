package cmd

import (
	"basketdesk/api"
	"basketdesk/internal"
	"basketdesk/internal/repository"
	"basketdesk/internal/service"
	"basketdesk/internal/signal"
	"basketdesk/internal/suggestion"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	universeRepository := repository.NewUniverseRepository(dbConn)
	basketRepository := repository.NewBasketRepository(dbConn)
	basketVersionRepository := repository.NewBasketVersionRepository(dbConn)
	constraintRepository := repository.NewConstraintRepository(dbConn)
	adjPriceRepository := repository.NewAdjustedPriceRepository(dbConn)
	macroRepository := repository.NewMacroRepository(dbConn)
	auditLogRepository := repository.NewAuditLogRepository()
	marketDataRepository := repository.NewYahooRepository()

	signalEngine, err := signal.NewEngine(signal.DefaultFactorWeights())
	if err != nil {
		return nil, err
	}

	universeService := service.NewUniverseService(dbConn, universeRepository, auditLogRepository)
	priceService := service.NewPriceService(
		universeRepository,
		adjPriceRepository,
		macroRepository,
		marketDataRepository,
		secrets.FredApiKey,
	)
	signalService := service.NewSignalService(
		universeRepository,
		adjPriceRepository,
		macroRepository,
		signalEngine,
	)
	basketService := service.NewBasketService(
		dbConn,
		basketRepository,
		basketVersionRepository,
		constraintRepository,
		universeRepository,
		auditLogRepository,
		adjPriceRepository,
		signalService,
		suggestion.NewEngine(),
	)

	apiHandler := &api.ApiHandler{
		Db:              dbConn,
		UniverseService: universeService,
		PriceService:    priceService,
		SignalService:   signalService,
		BasketService:   basketService,
	}

	return apiHandler, nil
}
