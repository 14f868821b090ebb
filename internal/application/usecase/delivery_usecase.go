package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/mail"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

// DeliveryUseCase records deliveries and sends the email receipt when mail
// is configured and the caller supplied a recipient.
type DeliveryUseCase struct {
	deliveryRepo   repository.DeliveryRepository
	partRepo       repository.PartRepository
	staffRepo      repository.LookupRepository[entity.StaffMember]
	buildingRepo   repository.LookupRepository[entity.Building]
	costCenterRepo repository.LookupRepository[entity.CostCenter]
	sender         mail.Sender
	log            *logger.Logger
	now            func() time.Time
}

// NewDeliveryUseCase builds the use case. A nil sender disables receipts.
func NewDeliveryUseCase(
	deliveryRepo repository.DeliveryRepository,
	partRepo repository.PartRepository,
	staffRepo repository.LookupRepository[entity.StaffMember],
	buildingRepo repository.LookupRepository[entity.Building],
	costCenterRepo repository.LookupRepository[entity.CostCenter],
	sender mail.Sender,
	log *logger.Logger,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		deliveryRepo:   deliveryRepo,
		partRepo:       partRepo,
		staffRepo:      staffRepo,
		buildingRepo:   buildingRepo,
		costCenterRepo: costCenterRepo,
		sender:         sender,
		log:            log,
		now:            time.Now,
	}
}

// List returns all deliveries.
func (uc *DeliveryUseCase) List() ([]entity.PartsDelivery, error) {
	return uc.deliveryRepo.List()
}

// Create records the delivery stamped with now, the acting user and status
// "delivered", then sends a receipt. The receipt is best effort: a send
// failure is logged and the delivery still succeeds.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest, actor *dto.SessionUserResponse) (*entity.PartsDelivery, error) {
	delivery := &entity.PartsDelivery{
		PartID:        in.PartID,
		StaffMemberID: in.StaffMemberID,
		BuildingID:    in.BuildingID,
		CostCenterID:  in.CostCenterID,
		Quantity:      dto.IntOr(in.Quantity, 0),
		Notes:         in.Notes,
		DeliveredAt:   uc.now(),
		DeliveredBy:   actor.ID,
		Status:        entity.DeliveryStatusDelivered,
	}
	stored, err := uc.deliveryRepo.Create(delivery)
	if err != nil {
		return nil, err
	}

	if uc.sender != nil && in.StaffMemberEmail != "" {
		if err := uc.sendReceipt(stored, in.StaffMemberEmail, actor.Name); err != nil {
			uc.log.Error().Err(err).Int("deliveryId", stored.ID).Msg("delivery receipt email failed")
		}
	}
	return stored, nil
}

// sendReceipt looks up the referenced entities and mails the HTML summary.
func (uc *DeliveryUseCase) sendReceipt(d *entity.PartsDelivery, to, deliveredByName string) error {
	partName := "Unknown Part"
	if part, err := uc.partRepo.GetByID(d.PartID); err == nil && part != nil {
		partName = part.Name
	}
	staffName := "Unknown"
	if staff, err := uc.staffRepo.GetByID(d.StaffMemberID); err == nil && staff != nil {
		staffName = staff.Name
	}
	buildingName := "Unknown"
	if building, err := uc.buildingRepo.GetByID(d.BuildingID); err == nil && building != nil {
		buildingName = building.Name
	}
	costCenterName, costCenterCode := "Unknown", "Unknown"
	if cc, err := uc.costCenterRepo.GetByID(d.CostCenterID); err == nil && cc != nil {
		costCenterName, costCenterCode = cc.Name, cc.Code
	}

	var b strings.Builder
	b.WriteString("<h2>Parts Delivery Receipt</h2>")
	fmt.Fprintf(&b, "<p><strong>Delivered To:</strong> %s</p>", staffName)
	fmt.Fprintf(&b, "<p><strong>Location:</strong> %s</p>", buildingName)
	fmt.Fprintf(&b, "<p><strong>Cost Center:</strong> %s (%s)</p>", costCenterName, costCenterCode)
	b.WriteString("<h3>Items Delivered:</h3><ul>")
	fmt.Fprintf(&b, "<li>%s - Quantity: %d</li>", partName, d.Quantity)
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Delivered By:</strong> %s</p>", deliveredByName)
	fmt.Fprintf(&b, "<p><strong>Date:</strong> %s</p>", d.DeliveredAt.Format("Jan 2, 2006 3:04 PM"))
	b.WriteString("<p><em>This is an automated receipt from the parts tracker.</em></p>")

	return uc.sender.Send(to, "Parts Delivery Receipt", b.String())
}
