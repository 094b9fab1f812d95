package domain

// SettingsUpdate is a partial settings write; nil fields are left as-is
// server-side.
type SettingsUpdate struct {
	ShowProductPrices *bool `json:"show_product_prices,omitempty"`
}
