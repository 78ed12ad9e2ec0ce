package domain

import "time"

// AssetPrice is one adjusted close observation. Date is UTC midnight.
type AssetPrice struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	Date   time.Time `json:"date"`
}
