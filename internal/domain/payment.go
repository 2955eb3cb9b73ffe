package domain

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodPayPal     PaymentMethod = "PAYPAL"
	PaymentMethodKlarna     PaymentMethod = "KLARNA"
	PaymentMethodSEPA       PaymentMethod = "SEPA"
	PaymentMethodSofort     PaymentMethod = "SOFORT"
)

// ParsePaymentMethod normalizes processor tags to the backend enum, the same
// mapping the backend applies at checkout ("card" and "credit_card" are both
// card payments).
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CARD", "CREDIT_CARD":
		return PaymentMethodCreditCard, nil
	case "PAYPAL":
		return PaymentMethodPayPal, nil
	case "KLARNA":
		return PaymentMethodKlarna, nil
	case "SEPA", "BANK_TRANSFER":
		return PaymentMethodSEPA, nil
	case "SOFORT":
		return PaymentMethodSofort, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// ProcessorType is the payment_method_types entry the processor expects for
// this method family.
func (m PaymentMethod) ProcessorType() string {
	switch m {
	case PaymentMethodCreditCard:
		return "card"
	case PaymentMethodSEPA:
		return "sepa_debit"
	default:
		return strings.ToLower(string(m))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
