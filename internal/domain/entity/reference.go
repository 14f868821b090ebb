package entity

// Reference/lookup entities: mostly static data the transactions point at.

// Building is a campus building parts get delivered to.
type Building struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// CostCenter is a billing code deliveries are charged against.
type CostCenter struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// StorageLocation is a stockroom or warehouse holding parts.
type StorageLocation struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// Shelf is a position within a storage location.
type Shelf struct {
	ID                int    `json:"id"`
	StorageLocationID int    `json:"storageLocationId"`
	Name              string `json:"name"`
	Active            bool   `json:"active"`
}

// Tool is a signoutable piece of equipment (separate from consumable parts).
type Tool struct {
	ID          int    `json:"id"`
	ToolNumber  string `json:"toolNumber,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// StaffMember is a person parts are issued or delivered to. Not a login account.
type StaffMember struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	BuildingID   int    `json:"buildingId,omitempty"`
	CostCenterID int    `json:"costCenterId,omitempty"`
}
