package entity

import (
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/enum"
)

// Order is a kitchen-facing order. It lives in its own collection and has no
// relationship to Sale records.
type Order struct {
	ID                 string                  `json:"_id"`
	OrderNumber        string                  `json:"orderNumber"`
	CustomerName       string                  `json:"customerName"`
	OrderType          string                  `json:"orderType"`
	CustomerPhone      string                  `json:"customerPhone"`
	CustomerAddress    string                  `json:"customerAddress"`
	Items              []OrderItem             `json:"items"`
	TotalAmount        float64                 `json:"totalAmount"`
	Status             enum.OrderStatus        `json:"status"`
	PaymentStatus      enum.OrderPaymentStatus `json:"paymentStatus"`
	PaymentMethod      string                  `json:"paymentMethod"`
	Notes              string                  `json:"notes"`
	PreparationTime    int                     `json:"preparationTime"`
	EstimatedReadyTime *time.Time              `json:"estimatedReadyTime,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

// OrderItem is one line of a kitchen order
type OrderItem struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Temperature string  `json:"temperature,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// OrderStatusUpdate carries the fields a kitchen order PATCH may change
type OrderStatusUpdate struct {
	Status        *enum.OrderStatus
	PaymentStatus *enum.OrderPaymentStatus
	UpdatedAt     time.Time
}

// Record returns the partial document applied to the stored order
func (u OrderStatusUpdate) Record() Record {
	r := Record{"updatedAt": u.UpdatedAt}
	if u.Status != nil {
		r["status"] = string(*u.Status)
	}
	if u.PaymentStatus != nil {
		r["paymentStatus"] = string(*u.PaymentStatus)
	}
	return r
}

// Fields lists the order fields the update changes, excluding the timestamp
func (u OrderStatusUpdate) Fields() []string {
	var fields []string
	if u.Status != nil {
		fields = append(fields, "status")
	}
	if u.PaymentStatus != nil {
		fields = append(fields, "paymentStatus")
	}
	return fields
}
