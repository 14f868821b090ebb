package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

// StatsUseCase derives the dashboard summary by scanning parts and issuances.
type StatsUseCase struct {
	partRepo     repository.PartRepository
	issuanceRepo repository.IssuanceRepository
	now          func() time.Time
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(partRepo repository.PartRepository, issuanceRepo repository.IssuanceRepository) *StatsUseCase {
	return &StatsUseCase{partRepo: partRepo, issuanceRepo: issuanceRepo, now: time.Now}
}

// Summary computes part counts, stock on hand and value, current-month
// issuance volume and the low-stock count.
func (uc *StatsUseCase) Summary() (*dto.StatsResponse, error) {
	parts, err := uc.partRepo.List()
	if err != nil {
		return nil, err
	}
	issuances, err := uc.issuanceRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.StatsResponse{
		TotalParts:          len(parts),
		TotalInventoryValue: decimal.Zero,
	}
	for _, p := range parts {
		out.TotalPartsInStock += p.Quantity
		out.TotalInventoryValue = out.TotalInventoryValue.Add(p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.LowStock() {
			out.LowStockItemsCount++
		}
	}

	now := uc.now()
	for _, issue := range issuances {
		if issue.IssuedAt.Year() == now.Year() && issue.IssuedAt.Month() == now.Month() {
			out.MonthlyPartsIssuance += issue.Quantity
		}
	}
	return out, nil
}
