package domain

type Settings struct {
	ShowProductPrices bool `json:"show_product_prices"`
}
