package domain

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Ref         string   `json:"ref"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Stock       bool     `json:"stock"`
	IsNew       bool     `json:"isNew,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
