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

type BasketRepository interface {
	Add(tx *sql.Tx, basket model.Basket) (*model.Basket, error)
	Get(basketID uuid.UUID) (*model.Basket, error)
	List() ([]model.Basket, error)
}

type basketRepositoryHandler struct {
	Db *sql.DB
}

func NewBasketRepository(db *sql.DB) BasketRepository {
	return basketRepositoryHandler{Db: db}
}

func (h basketRepositoryHandler) Add(tx *sql.Tx, basket model.Basket) (*model.Basket, error) {
	basket.CreatedAt = time.Now().UTC()
	query := table.Basket.
		INSERT(table.Basket.AllColumns).
		MODEL(basket).
		RETURNING(table.Basket.AllColumns)

	out := model.Basket{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert basket: %w", err)
	}

	return &out, nil
}

func (h basketRepositoryHandler) Get(basketID uuid.UUID) (*model.Basket, error) {
	query := table.Basket.
		SELECT(table.Basket.AllColumns).
		WHERE(table.Basket.BasketID.EQ(postgres.UUID(basketID)))

	out := model.Basket{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "basket", ID: basketID.String()}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get basket %s: %w", basketID, err)
	}

	return &out, nil
}

func (h basketRepositoryHandler) List() ([]model.Basket, error) {
	query := table.Basket.
		SELECT(table.Basket.AllColumns).
		ORDER_BY(table.Basket.CreatedAt.DESC())

	out := []model.Basket{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list baskets: %w", err)
	}

	return out, nil
}
