package domain

// CartItem is one line of a cart or an order. ProductID is unique within a
// cart; the backend merges duplicate lines on add.
type CartItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	ImageBase64 string  `json:"imageBase64"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	UserEmail string     `json:"userEmail"`
	Items     []CartItem `json:"items"`
}

// Total sums price*quantity over all items. Callers never store a total
// next to the items; they derive it through this.
func Total(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
