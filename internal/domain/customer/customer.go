package customer

import (
	"time"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/order"
)

type Customer struct {
	ID        string        `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   order.Address `json:"address"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
