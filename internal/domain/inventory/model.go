package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Item is one stock batch. Batches of the same medicine are kept separate;
// stock entry never aggregates quantities.
type Item struct {
	ID             uuid.UUID `db:"id" json:"id"`
	MedicineName   string    `db:"medicine_name" json:"medicine_name"`
	BatchNumber    string    `db:"batch_number" json:"batch_number"`
	QuantityOnHand int       `db:"quantity_on_hand" json:"quantity_on_hand"`
	CostPrice      float64   `db:"cost_price" json:"cost_price"`
	SalePrice      float64   `db:"sale_price" json:"sale_price"`
	ExpirationDate string    `db:"expiration_date" json:"expiration_date"`
	Supplier       string    `db:"supplier" json:"supplier"`
	ReorderLevel   int       `db:"reorder_level" json:"reorder_level"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// StockInput binds the wire body of POST /inventory; clients send short
// keys, responses carry the column names.
type StockInput struct {
	MedicineName   string  `json:"name"`
	BatchNumber    string  `json:"batch"`
	QuantityOnHand int     `json:"qty"`
	CostPrice      float64 `json:"cost"`
	SalePrice      float64 `json:"sale"`
	ExpirationDate string  `json:"expiry"`
	Supplier       string  `json:"supplier"`
	ReorderLevel   int     `json:"reorder_level"`
}

type DispenseInput struct {
	Quantity int `json:"qty"`
}
