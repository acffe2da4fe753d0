package account

// Account is the customer account record owned by the account service.
// The order workflow holds a read-only, request-scoped copy.
type Account struct {
	ID                string            `json:"id"`
	Customer          Customer          `json:"customer"`
	ShippingAddress   Address           `json:"shippingAddress"`
	PaymentInstrument PaymentInstrument `json:"paymentInstrument"`
}

// Customer holds the contact details of the account owner.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Address is a postal shipping address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PaymentInstrument references the tokenized payment method on file.
type PaymentInstrument struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}
