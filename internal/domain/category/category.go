package category

import (
	"time"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
)

type Category struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         i18n.Text `json:"name"`
	Description  i18n.Text `json:"description"`
	ParentID     *string   `json:"parentId"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
