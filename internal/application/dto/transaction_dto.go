package dto

// CreateIssuanceRequest body for POST /api/parts-issuance. Quantity is
// coerced like part quantities.
type CreateIssuanceRequest struct {
	PartID      int    `json:"partId"`
	Quantity    any    `json:"quantity"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
	ProjectCode string `json:"projectCode"`
}

// CreateDeliveryRequest body for POST /api/parts-delivery. StaffMemberEmail
// is carried alongside the record fields: when present and mail is
// configured, a receipt goes out.
type CreateDeliveryRequest struct {
	PartID           int    `json:"partId"`
	StaffMemberID    int    `json:"staffMemberId"`
	BuildingID       int    `json:"buildingId"`
	CostCenterID     int    `json:"costCenterId"`
	Quantity         any    `json:"quantity"`
	Notes            string `json:"notes"`
	StaffMemberEmail string `json:"staffMemberEmail"`
}
