package product

import (
	"time"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
)

const (
	StatusActive     = "active"
	StatusOutOfStock = "outOfStock"
	StatusDraft      = "draft"
)

type Product struct {
	ID          string    `json:"id"`
	Title       i18n.Text `json:"title"`
	Price       float64   `json:"price"`
	OldPrice    *float64  `json:"oldPrice,omitempty"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	IsNew       bool      `json:"isNew"`
	IsOnSale    bool      `json:"isOnSale"`
	Description i18n.Text `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SalePercent returns the displayed discount, 0 when the product is not
// discounted or the old price does not exceed the current one.
func (p Product) SalePercent() int {
	if p.OldPrice == nil || *p.OldPrice <= p.Price {
		return 0
	}
	return int((*p.OldPrice - p.Price) / *p.OldPrice * 100)
}
