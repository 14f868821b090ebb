package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

// RecentIssuanceLimit how many issuances the recent view returns.
const RecentIssuanceLimit = 20

// IssuanceUseCase records stock leaving the stockroom and derives the
// usage views.
type IssuanceUseCase struct {
	issuanceRepo repository.IssuanceRepository
	partRepo     repository.PartRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewIssuanceUseCase builds the use case.
func NewIssuanceUseCase(issuanceRepo repository.IssuanceRepository, partRepo repository.PartRepository, log *logger.Logger) *IssuanceUseCase {
	return &IssuanceUseCase{
		issuanceRepo: issuanceRepo,
		partRepo:     partRepo,
		log:          log,
		now:          time.Now,
	}
}

// List returns all issuances.
func (uc *IssuanceUseCase) List() ([]entity.PartsIssuance, error) {
	return uc.issuanceRepo.List()
}

// Recent returns the newest issuances by issue timestamp, capped at
// RecentIssuanceLimit.
func (uc *IssuanceUseCase) Recent() ([]entity.PartsIssuance, error) {
	issuances, err := uc.issuanceRepo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(issuances, func(i, j int) bool {
		return issuances[i].IssuedAt.After(issuances[j].IssuedAt)
	})
	if len(issuances) > RecentIssuanceLimit {
		issuances = issuances[:RecentIssuanceLimit]
	}
	return issuances, nil
}

// Create records the issuance stamped with now and the acting user, then
// decrements the referenced part's quantity clamped at zero. The two writes
// are separate snapshot mutations, not a transaction; a crash in between
// leaves the issuance recorded with the stock not yet adjusted.
func (uc *IssuanceUseCase) Create(in dto.CreateIssuanceRequest, issuedBy int) (*entity.PartsIssuance, error) {
	issuance := &entity.PartsIssuance{
		PartID:      in.PartID,
		Quantity:    dto.IntOr(in.Quantity, 0),
		Reason:      in.Reason,
		Notes:       in.Notes,
		ProjectCode: in.ProjectCode,
		IssuedAt:    uc.now(),
		IssuedBy:    issuedBy,
	}
	stored, err := uc.issuanceRepo.Create(issuance)
	if err != nil {
		return nil, err
	}

	part, err := uc.partRepo.GetByID(stored.PartID)
	if err != nil {
		return nil, err
	}
	if part != nil {
		newQuantity := part.Quantity - stored.Quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		if _, err := uc.partRepo.Update(part.ID, map[string]any{"quantity": newQuantity}); err != nil {
			return nil, err
		}
	} else {
		uc.log.Warn().Int("partId", stored.PartID).Msg("issuance references unknown part, stock unchanged")
	}
	return stored, nil
}

// MonthlyUsage buckets the current year's issuances by calendar month and
// sums quantities. Months with zero total are omitted.
func (uc *IssuanceUseCase) MonthlyUsage() ([]dto.MonthlyUsageEntry, error) {
	issuances, err := uc.issuanceRepo.List()
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	for _, issue := range issuances {
		key := fmt.Sprintf("%04d-%02d", issue.IssuedAt.Year(), int(issue.IssuedAt.Month()))
		totals[key] += issue.Quantity
	}

	year := uc.now().Year()
	var out []dto.MonthlyUsageEntry
	for m := time.January; m <= time.December; m++ {
		key := fmt.Sprintf("%04d-%02d", year, int(m))
		if count := totals[key]; count > 0 {
			out = append(out, dto.MonthlyUsageEntry{Month: m.String()[:3], Count: count})
		}
	}
	return out, nil
}
