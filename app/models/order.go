package models

import "time"

// ShippingAddress is the address snapshot taken at checkout. Orders keep
// their own copy so later edits to the user's saved addresses never change
// where a placed order ships.
type ShippingAddress struct {
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Email     string `gorm:"size:191" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Address1  string `gorm:"size:255" json:"address1"`
	Address2  string `gorm:"size:255" json:"address2"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:100" json:"state"`
	Zip       string `gorm:"size:10" json:"zip"`
	Country   string `gorm:"size:100" json:"country"`
}

type Order struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	UserID               uint            `gorm:"index" json:"userId"`
	User                 *User           `json:"user,omitempty"`
	Items                []OrderItem     `json:"items"`
	ShipAddress          ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipAddress"`
	Subtotal             float64         `json:"subtotal"`
	TaxCharge            float64         `json:"taxCharge"`
	ShippingCharge       float64         `json:"shippingCharge"`
	TotalPrice           float64         `json:"totalPrice"`
	Status               OrderStatus     `gorm:"size:50;default:'Awaiting for Payment'" json:"status"`
	OrderDate            time.Time       `json:"orderDate"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// ItemCount sums the quantities across all line items.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// OrderItem is one line of an order. Title and Price are snapshots of the
// idol at purchase time.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"orderId"`
	IdolID   uint    `gorm:"index" json:"idolId"`
	Idol     *Idol   `json:"idol,omitempty"`
	Title    string  `gorm:"size:191" json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
