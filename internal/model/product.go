package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// price is a JSON number on the wire, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item that can belong to many orders.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ProductName string          `json:"product_name" gorm:"size:100;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Orders []Order `json:"-" gorm:"many2many:order_product"`
}
