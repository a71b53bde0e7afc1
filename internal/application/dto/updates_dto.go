package dto

// RecentUpdatesResponse entidades creadas después del timestamp `since` (ascendente).
type RecentUpdatesResponse struct {
	Since     string             `json:"since"`
	Suppliers []SupplierResponse `json:"suppliers"`
	Customers []CustomerResponse `json:"customers"`
	Purchases []PurchaseResponse `json:"purchases"`
	Sales     []SaleResponse     `json:"sales"`
}
