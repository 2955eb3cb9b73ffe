package domain

type OrderStatus string

const (
	OrderStatusProcessing      OrderStatus = "PROCESSING"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	OrderStatusReturned        OrderStatus = "RETURNED"
)

// CanTransitionTo encodes the order lifecycle:
// PROCESSING -> SHIPPED -> RETURN_REQUESTED -> RETURNED, and
// PROCESSING -> CANCELLED. CANCELLED and RETURNED are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusReturnRequested
	case OrderStatusReturnRequested:
		return next == OrderStatusReturned
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// CanCancel is the customer-side gate: cancellation is allowed only while
// the order has not shipped.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusProcessing
}

// CanRequestReturn is the customer-side gate: returns can only be requested
// after shipment.
func (s OrderStatus) CanRequestReturn() bool {
	return s == OrderStatusShipped
}

func (s OrderStatus) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Order is server-owned; the client reads it and drives transitions through
// the orders resource client. Items are a frozen copy of the cart at
// purchase time.
type Order struct {
	ID              string        `json:"id"`
	UserEmail       string        `json:"userEmail"`
	Items           []CartItem    `json:"items"`
	TotalPrice      float64       `json:"totalPrice"`
	ShippingAddress Address       `json:"shippingAddress"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
}
