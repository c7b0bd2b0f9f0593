package store

import "time"

// One declarative camelCase-field to storage-column mapping per entity,
// shared by every domain service. The services used to each carry their
// own copy of this table; keeping a single one removes the drift risk.

type FieldCol struct {
	Field  string // application-facing camelCase name
	Column string // storage snake_case column
}

type FieldMap []FieldCol

func (m FieldMap) Column(field string) (string, bool) {
	for _, fc := range m {
		if fc.Field == field {
			return fc.Column, true
		}
	}
	return "", false
}

// Columns returns the storage column list in declaration order.
func (m FieldMap) Columns() []string {
	out := make([]string, len(m))
	for i, fc := range m {
		out[i] = fc.Column
	}
	return out
}

// NormalizeRow accepts a row keyed by either naming convention (imports
// arrive in both) and returns one keyed by storage columns. Unknown keys
// are dropped.
func (m FieldMap) NormalizeRow(in Row) Row {
	out := Row{}
	for _, fc := range m {
		if v, ok := in[fc.Column]; ok {
			out[fc.Column] = v
			continue
		}
		if v, ok := in[fc.Field]; ok {
			out[fc.Column] = v
		}
	}
	return out
}

var ProductFields = FieldMap{
	{"id", "id"},
	{"titleSr", "title_sr"},
	{"titleEn", "title_en"},
	{"price", "price"},
	{"oldPrice", "old_price"},
	{"category", "category"},
	{"stock", "stock"},
	{"status", "status"},
	{"isNew", "is_new"},
	{"isOnSale", "is_on_sale"},
	{"descriptionSr", "description_sr"},
	{"descriptionEn", "description_en"},
	{"image", "image"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var CategoryFields = FieldMap{
	{"id", "id"},
	{"slug", "slug"},
	{"nameSr", "name_sr"},
	{"nameEn", "name_en"},
	{"descriptionSr", "description_sr"},
	{"descriptionEn", "description_en"},
	{"parentId", "parent_id"},
	{"isActive", "is_active"},
	{"displayOrder", "display_order"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var OrderFields = FieldMap{
	{"id", "id"},
	{"customerId", "customer_id"},
	{"customerName", "customer_name"},
	{"customerEmail", "customer_email"},
	{"customerPhone", "customer_phone"},
	{"shippingAddress", "shipping_address"},
	{"items", "items"},
	{"totalAmount", "total_amount"},
	{"status", "status"},
	{"paymentMethod", "payment_method"},
	{"paymentStatus", "payment_status"},
	{"notes", "notes"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var CustomerFields = FieldMap{
	{"id", "id"},
	{"firstName", "first_name"},
	{"lastName", "last_name"},
	{"email", "email"},
	{"phone", "phone"},
	{"address", "address"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var BannerFields = FieldMap{
	{"id", "id"},
	{"titleSr", "title_sr"},
	{"titleEn", "title_en"},
	{"descriptionSr", "description_sr"},
	{"descriptionEn", "description_en"},
	{"image", "image"},
	{"targetUrl", "target_url"},
	{"isActive", "is_active"},
	{"position", "position"},
	{"displayOrder", "display_order"},
	{"discountPercent", "discount_percent"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

// PartialUpdate builds the Update for a partial edit: only the fields
// present in set are assigned (declaration order), updated_at is always
// appended by the executing backend, and the row id is the final
// positional parameter.
func PartialUpdate(table string, m FieldMap, id string, set map[string]any) Update {
	upd := Update{Table: table}
	for _, fc := range m {
		if fc.Field == "id" || fc.Field == "createdAt" || fc.Field == "updatedAt" {
			continue
		}
		if v, ok := set[fc.Field]; ok {
			upd.Set = append(upd.Set, Assign{Column: fc.Column, Value: v})
		}
	}
	upd.Set = append(upd.Set, Assign{Column: "updated_at", Value: nowRFC3339()})
	upd.Where = []Cond{Eq("id", id)}
	return upd
}

// StampNow is the updated_at assignment appended to hand-built updates,
// so both backends stamp the same way.
func StampNow() Assign {
	return Assign{Column: "updated_at", Value: nowRFC3339()}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
