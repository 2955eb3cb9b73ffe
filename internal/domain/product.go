package domain

// Product is the catalog entry as served by the backend. Images travel
// inline as base64 because the backend stores them that way.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageBase64 string  `json:"imageBase64"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
