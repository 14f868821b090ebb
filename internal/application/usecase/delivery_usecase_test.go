package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/mail"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/storage"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

type recordingSender struct {
	to      string
	subject string
	body    string
	err     error
	calls   int
}

func (s *recordingSender) Send(to, subject, htmlBody string) error {
	s.calls++
	s.to, s.subject, s.body = to, subject, htmlBody
	return s.err
}

var _ mail.Sender = (*recordingSender)(nil)

func newDeliveryFixture(t *testing.T, sender mail.Sender) (*DeliveryUseCase, *storage.Store) {
	t.Helper()
	store := newTestStore(t)
	log := logger.New(logger.Config{Level: "error"})
	uc := NewDeliveryUseCase(
		storage.NewDeliveryRepository(store),
		storage.NewPartRepository(store),
		storage.NewLookupRepository[entity.StaffMember](store, storage.CollectionStaffMembers),
		storage.NewLookupRepository[entity.Building](store, storage.CollectionBuildings),
		storage.NewLookupRepository[entity.CostCenter](store, storage.CollectionCostCenters),
		sender,
		log,
	)
	return uc, store
}

func testActor() *dto.SessionUserResponse {
	return &dto.SessionUserResponse{ID: 1, Username: "admin", Name: "Administrator", Role: entity.RoleAdmin}
}

func TestDeliveryStampsActorAndStatus(t *testing.T) {
	uc, _ := newDeliveryFixture(t, nil)
	fixed := time.Date(2026, time.April, 2, 9, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	stored, err := uc.Create(dto.CreateDeliveryRequest{PartID: 1, Quantity: 4}, testActor())
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Quantity)
	assert.Equal(t, 1, stored.DeliveredBy)
	assert.Equal(t, entity.DeliveryStatusDelivered, stored.Status)
	assert.True(t, stored.DeliveredAt.Equal(fixed))
}

func TestDeliverySendsReceiptWhenEmailGiven(t *testing.T) {
	sender := &recordingSender{}
	uc, store := newDeliveryFixture(t, sender)

	partRepo := storage.NewPartRepository(store)
	part, err := partRepo.Create(&entity.Part{Name: "HVAC Filter", Quantity: 10})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateDeliveryRequest{
		PartID:           part.ID,
		StaffMemberID:    1,
		BuildingID:       1,
		CostCenterID:     1,
		Quantity:         2,
		StaffMemberEmail: "staff@example.org",
	}, testActor())
	require.NoError(t, err)

	require.Equal(t, 1, sender.calls)
	assert.Equal(t, "staff@example.org", sender.to)
	assert.Equal(t, "Parts Delivery Receipt", sender.subject)
	assert.Contains(t, sender.body, "HVAC Filter")
	assert.Contains(t, sender.body, "Quantity: 2")
	assert.Contains(t, sender.body, "Administrator")
}

func TestDeliverySkipsReceiptWithoutEmail(t *testing.T) {
	sender := &recordingSender{}
	uc, _ := newDeliveryFixture(t, sender)

	_, err := uc.Create(dto.CreateDeliveryRequest{PartID: 1, Quantity: 1}, testActor())
	require.NoError(t, err)
	assert.Zero(t, sender.calls)
}

func TestDeliverySucceedsWhenReceiptFails(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp unreachable")}
	uc, _ := newDeliveryFixture(t, sender)

	stored, err := uc.Create(dto.CreateDeliveryRequest{
		PartID:           1,
		Quantity:         1,
		StaffMemberEmail: "staff@example.org",
	}, testActor())
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
	assert.Equal(t, 1, sender.calls)

	deliveries, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}
