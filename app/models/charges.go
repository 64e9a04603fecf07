package models

import "time"

// Charges is the storewide pricing configuration: the tax rate applied to
// order subtotals and the flat delivery charge. There is one active row;
// Fetch returns the most recently added one so older rows stay as history.
type Charges struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TaxRate        float64   `json:"taxRate"`
	DeliveryCharge float64   `json:"deliveryCharge"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DashboardStats is the aggregate snapshot shown on the console home page.
// The product and user counts keep the nested shape the console reads
// (productsCount.productsCount, usersCount.count).
type DashboardStats struct {
	TotalSales      float64       `json:"totalSales"`
	TotalOrders     int64         `json:"totalOrders"`
	TotalOrderItems int64         `json:"totalOrderItems"`
	InventoryCount  int64         `json:"inventoryCount"`
	ProductsCount   ProductsCount `json:"productsCount"`
	UsersCount      UsersCount    `json:"usersCount"`
}

type ProductsCount struct {
	ProductsCount int64 `json:"productsCount"`
}

type UsersCount struct {
	Count int64 `json:"count"`
}
