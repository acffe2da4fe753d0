package shipment

import "github.com/geekshirt/order-service/internal/service/models/account"

// Request is the shipment-request event payload published for approved orders.
// The receiver name is "<lastName>, <firstName>".
type Request struct {
	OrderID              string          `json:"orderId"`
	ShippingReceiverName string          `json:"shippingReceiverName"`
	ReceiptEmail         string          `json:"receiptEmail"`
	ShippingAddress      account.Address `json:"shippingAddress"`
}
