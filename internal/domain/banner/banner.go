package banner

import (
	"time"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
)

// Positions a banner can occupy on the storefront.
const (
	PositionHero     = "hero"
	PositionPromo    = "promo"
	PositionHome     = "home"
	PositionCategory = "category"
)

// Banner covers promotions too: a promotion is a banner carrying a
// discount percentage.
type Banner struct {
	ID              string    `json:"id"`
	Title           i18n.Text `json:"title"`
	Description     i18n.Text `json:"description"`
	Image           string    `json:"image"`
	TargetURL       string    `json:"targetUrl"`
	IsActive        bool      `json:"isActive"`
	Position        string    `json:"position"`
	DisplayOrder    int       `json:"displayOrder"`
	DiscountPercent *float64  `json:"discountPercent,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ValidPosition(p string) bool {
	switch p {
	case PositionHero, PositionPromo, PositionHome, PositionCategory:
		return true
	}
	return false
}
