package entity

import "time"

// Delivery status values.
const (
	DeliveryStatusDelivered = "delivered"
)

// PartsIssuance records stock leaving the stockroom. Creating one decrements
// the referenced part's quantity (clamped at zero).
type PartsIssuance struct {
	ID          int       `json:"id"`
	PartID      int       `json:"partId"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ProjectCode string    `json:"projectCode,omitempty"`
	IssuedAt    time.Time `json:"issuedAt"`
	IssuedBy    int       `json:"issuedBy"`
}

// PartsDelivery records a part handed to a staff member at a building,
// charged to a cost center. May trigger an email receipt.
type PartsDelivery struct {
	ID            int       `json:"id"`
	PartID        int       `json:"partId"`
	StaffMemberID int       `json:"staffMemberId"`
	BuildingID    int       `json:"buildingId"`
	CostCenterID  int       `json:"costCenterId"`
	Quantity      int       `json:"quantity"`
	Notes         string    `json:"notes,omitempty"`
	DeliveredAt   time.Time `json:"deliveredAt"`
	DeliveredBy   int       `json:"deliveredBy"`
	Status        string    `json:"status"`
}
