package models

// OrderSubmission is the checkout form payload. Fields arrive untyped from
// the storefront frontend; they are captured once, logged, and discarded.
// No order entity persists anywhere.
type OrderSubmission struct {
	BuyerBillingID  any `json:"buyer_billing_id"`
	ChosenProduct   any `json:"chosen_product"`
	ShippingAddress any `json:"shipping_address"`
	ContactMethod   any `json:"contact_method"`
	ContactInfo     any `json:"contact_info"`
}
