package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/storage"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

func newIssuanceFixture(t *testing.T) (*IssuanceUseCase, *PartUseCase) {
	t.Helper()
	store := newTestStore(t)
	partRepo := storage.NewPartRepository(store)
	log := logger.New(logger.Config{Level: "error"})
	return NewIssuanceUseCase(storage.NewIssuanceRepository(store), partRepo, log), NewPartUseCase(partRepo)
}

func TestIssuanceDecrementsPartQuantity(t *testing.T) {
	issuanceUC, partUC := newIssuanceFixture(t)

	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filter", Quantity: 5, ReorderLevel: 10})
	require.NoError(t, err)

	issued, err := issuanceUC.Create(dto.CreateIssuanceRequest{PartID: part.ID, Quantity: 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, issued.Quantity)
	assert.Equal(t, 1, issued.IssuedBy)
	assert.False(t, issued.IssuedAt.IsZero())

	parts, err := partUC.List("")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 2, parts[0].Quantity)
}

func TestIssuanceClampsQuantityAtZero(t *testing.T) {
	issuanceUC, partUC := newIssuanceFixture(t)

	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filter", Quantity: 2})
	require.NoError(t, err)

	_, err = issuanceUC.Create(dto.CreateIssuanceRequest{PartID: part.ID, Quantity: 10}, 1)
	require.NoError(t, err)

	parts, err := partUC.List("")
	require.NoError(t, err)
	assert.Equal(t, 0, parts[0].Quantity, "over-issuing never drives stock negative")
}

func TestIssuanceUnknownPartStillRecorded(t *testing.T) {
	issuanceUC, _ := newIssuanceFixture(t)

	issued, err := issuanceUC.Create(dto.CreateIssuanceRequest{PartID: 404, Quantity: 2}, 1)
	require.NoError(t, err)
	assert.NotZero(t, issued.ID)
}

func TestRecentOrdersNewestFirstAndCaps(t *testing.T) {
	issuanceUC, partUC := newIssuanceFixture(t)

	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filter", Quantity: 1000})
	require.NoError(t, err)

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < RecentIssuanceLimit+5; i++ {
		issuanceUC.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		_, err := issuanceUC.Create(dto.CreateIssuanceRequest{PartID: part.ID, Quantity: 1}, 1)
		require.NoError(t, err)
	}

	recent, err := issuanceUC.Recent()
	require.NoError(t, err)
	require.Len(t, recent, RecentIssuanceLimit)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].IssuedAt.After(recent[i-1].IssuedAt), "newest first")
	}
}

func TestMonthlyUsageBucketsAndOmitsZeroMonths(t *testing.T) {
	issuanceUC, partUC := newIssuanceFixture(t)

	part, err := partUC.Create(dto.CreatePartRequest{Name: "Filter", Quantity: 1000})
	require.NoError(t, err)

	issueAt := func(ts time.Time, qty int) {
		issuanceUC.now = func() time.Time { return ts }
		_, err := issuanceUC.Create(dto.CreateIssuanceRequest{PartID: part.ID, Quantity: qty}, 1)
		require.NoError(t, err)
	}
	issueAt(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), 4)
	issueAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), 2)
	issueAt(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), 3)
	// Previous year must not leak into the current-year histogram
	issueAt(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), 50)

	issuanceUC.now = func() time.Time { return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC) }
	usage, err := issuanceUC.MonthlyUsage()
	require.NoError(t, err)

	assert.Equal(t, []dto.MonthlyUsageEntry{
		{Month: "Jan", Count: 4},
		{Month: "Mar", Count: 5},
	}, usage)
}
