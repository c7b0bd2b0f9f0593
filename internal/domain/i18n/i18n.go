package i18n

// Text is a Serbian/English string pair. Every customer-facing field on
// the catalog carries both languages.
type Text struct {
	Sr string `json:"sr"`
	En string `json:"en"`
}
