package store

// Fixture rows for the emulation store, loaded the first time a profile
// starts without persisted collections. Texts are Serbian/English pairs
// like the live catalog.

func SeedProducts() []Row {
	return []Row{
		{
			"id":             "prod-1",
			"title_sr":       "Silikonska maska za iPhone 15",
			"title_en":       "Silicone Case for iPhone 15",
			"price":          1490.0,
			"old_price":      1990.0,
			"category":       "phone-cases",
			"stock":          42,
			"status":         "active",
			"is_new":         true,
			"is_on_sale":     true,
			"description_sr": "Mekana silikonska maska sa zaštitom kamere.",
			"description_en": "Soft silicone case with camera protection.",
			"image":          "/images/products/iphone15-case.jpg",
			"created_at":     "2025-01-10T09:00:00Z",
			"updated_at":     "2025-01-10T09:00:00Z",
		},
		{
			"id":             "prod-2",
			"title_sr":       "Zaštitno staklo 9H",
			"title_en":       "9H Tempered Glass",
			"price":          790.0,
			"old_price":      nil,
			"category":       "screen-protectors",
			"stock":          120,
			"status":         "active",
			"is_new":         false,
			"is_on_sale":     false,
			"description_sr": "Kaljeno staklo tvrdoće 9H, puna pokrivenost ekrana.",
			"description_en": "9H hardness tempered glass, full screen coverage.",
			"image":          "/images/products/tempered-glass.jpg",
			"created_at":     "2025-01-08T12:30:00Z",
			"updated_at":     "2025-01-08T12:30:00Z",
		},
		{
			"id":             "prod-3",
			"title_sr":       "Brzi punjač 30W USB-C",
			"title_en":       "30W USB-C Fast Charger",
			"price":          2490.0,
			"old_price":      nil,
			"category":       "chargers",
			"stock":          0,
			"status":         "outOfStock",
			"is_new":         true,
			"is_on_sale":     false,
			"description_sr": "GaN punjač sa Power Delivery podrškom.",
			"description_en": "GaN charger with Power Delivery support.",
			"image":          "/images/products/usbc-charger.jpg",
			"created_at":     "2025-01-05T08:15:00Z",
			"updated_at":     "2025-01-12T10:00:00Z",
		},
		{
			"id":             "prod-4",
			"title_sr":       "Bežične slušalice TWS Pro",
			"title_en":       "TWS Pro Wireless Earbuds",
			"price":          4990.0,
			"old_price":      5990.0,
			"category":       "headphones",
			"stock":          18,
			"status":         "active",
			"is_new":         false,
			"is_on_sale":     true,
			"description_sr": "Bluetooth 5.3, aktivno poništavanje buke.",
			"description_en": "Bluetooth 5.3 with active noise cancellation.",
			"image":          "/images/products/tws-pro.jpg",
			"created_at":     "2024-12-20T16:45:00Z",
			"updated_at":     "2024-12-20T16:45:00Z",
		},
	}
}

func SeedCategories() []Row {
	return []Row{
		{
			"id":             "cat-1",
			"slug":           "phone-cases",
			"name_sr":        "Maske za telefone",
			"name_en":        "Phone Cases",
			"description_sr": "Maske i futrole za sve modele.",
			"description_en": "Cases and covers for all models.",
			"parent_id":      nil,
			"is_active":      true,
			"display_order":  1,
			"created_at":     "2024-11-01T10:00:00Z",
			"updated_at":     "2024-11-01T10:00:00Z",
		},
		{
			"id":             "cat-2",
			"slug":           "screen-protectors",
			"name_sr":        "Zaštitna stakla",
			"name_en":        "Screen Protectors",
			"description_sr": "Kaljena stakla i folije.",
			"description_en": "Tempered glass and films.",
			"parent_id":      nil,
			"is_active":      true,
			"display_order":  2,
			"created_at":     "2024-11-01T10:00:00Z",
			"updated_at":     "2024-11-01T10:00:00Z",
		},
		{
			"id":             "cat-3",
			"slug":           "chargers",
			"name_sr":        "Punjači i kablovi",
			"name_en":        "Chargers & Cables",
			"description_sr": "Punjači, kablovi i adapteri.",
			"description_en": "Chargers, cables and adapters.",
			"parent_id":      nil,
			"is_active":      true,
			"display_order":  3,
			"created_at":     "2024-11-01T10:00:00Z",
			"updated_at":     "2024-11-01T10:00:00Z",
		},
		{
			"id":             "cat-4",
			"slug":           "headphones",
			"name_sr":        "Slušalice",
			"name_en":        "Headphones",
			"description_sr": "Bežične i žičane slušalice.",
			"description_en": "Wireless and wired headphones.",
			"parent_id":      nil,
			"is_active":      true,
			"display_order":  4,
			"created_at":     "2024-11-01T10:00:00Z",
			"updated_at":     "2024-11-01T10:00:00Z",
		},
	}
}
