package entity

// StoreHeader is printed at the top of every receipt
type StoreHeader struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ReceiptLine is one printed item line
type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	Notes     string  `json:"notes,omitempty"`
}

// Receipt is the customer copy of a sale. It is composed at print time and never stored.
type Receipt struct {
	Store         StoreHeader   `json:"store"`
	InvoiceNumber string        `json:"invoice_number"`
	ReceiptNumber string        `json:"receiptNumber"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier"`
	Customer      string        `json:"customer"`
	Lines         []ReceiptLine `json:"lines"`
	Total         float64       `json:"totalAmount"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus string        `json:"paymentStatus"`
	AmountPaid    float64       `json:"amountPaid"`
	Remaining     float64       `json:"remainingAmount"`
	Notes         string        `json:"notes,omitempty"`
}

// KitchenTicket is the kitchen copy of an order
type KitchenTicket struct {
	Store         StoreHeader   `json:"store"`
	OrderNumber   string        `json:"orderNumber"`
	OrderType     string        `json:"orderType"`
	Customer      string        `json:"customerName"`
	Date          string        `json:"date"`
	Lines         []ReceiptLine `json:"lines"`
	Total         float64       `json:"totalAmount"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty"`
}
