package dto

import "github.com/shopspring/decimal"

// StatsResponse dashboard summary for GET /api/stats.
type StatsResponse struct {
	TotalParts           int             `json:"totalParts"`
	TotalPartsInStock    int             `json:"totalPartsInStock"`
	MonthlyPartsIssuance int             `json:"monthlyPartsIssuance"`
	LowStockItemsCount   int             `json:"lowStockItemsCount"`
	TotalInventoryValue  decimal.Decimal `json:"totalInventoryValue"`
}

// MonthlyUsageEntry one bar of the 12-month issuance histogram. Months with
// zero usage are omitted from the response.
type MonthlyUsageEntry struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
