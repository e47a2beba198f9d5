package models

import "github.com/shopspring/decimal"

// PaymentConfirmation is the response body for a simulated payment approval.
// The payment is always approved; no gateway is involved.
type PaymentConfirmation struct {
	Message     string          `json:"message"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Cart        []LineItem      `json:"cart"`
}
