package model

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a purchase belonging to exactly one user. Products are
// linked through the order_product join table, whose composite primary key
// is the storage-level guard against duplicate links.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderDate time.Time `json:"order_date" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User     User      `json:"-" gorm:"foreignKey:UserID"`
	Products []Product `json:"products,omitempty" gorm:"many2many:order_product"`
}

// BeforeCreate defaults the order date to now when the client omits it.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}
