// Package pantry provides the application layer for inventory management
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// PantryService implements the inventory use cases
type PantryService struct {
	repo   outbound.PantryRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewPantryService creates a new pantry service
func NewPantryService(repo outbound.PantryRepository, logger *zap.Logger) inbound.PantryService {
	return &PantryService{
		repo:   repo,
		logger: logger.Named("pantry-service"),
		now:    time.Now,
	}
}

// AddItem adds a new inventory item
func (s *PantryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.InventoryItemDTO, error) {
	now := s.now()
	item := domain.InventoryItem{
		ID:         uuid.New(),
		Name:       cmd.Name,
		Category:   domain.Category(cmd.Category),
		Quantity:   cmd.Quantity,
		Unit:       cmd.Unit,
		Expiration: cmd.Expiration,
		Location:   cmd.Location,
		AddedAt:    now,
		UpdatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return nil, errors.NewAppError(errors.CodeInvalidPantryItem, "Invalid pantry item", err.Error())
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("save pantry item", err)
	}

	s.logger.Info("Pantry item added",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)
	dto := itemToDTO(item)
	return &dto, nil
}

// UpdateItem applies a partial update to an existing item
func (s *PantryService) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) (*inbound.InventoryItemDTO, error) {
	item, err := s.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(cmd.ID.String())
	}

	if cmd.Name != nil {
		item.Name = *cmd.Name
	}
	if cmd.Category != nil {
		item.Category = domain.Category(*cmd.Category)
	}
	if cmd.Quantity != nil {
		item.Quantity = *cmd.Quantity
	}
	if cmd.Unit != nil {
		item.Unit = *cmd.Unit
	}
	if cmd.Expiration != nil {
		item.Expiration = cmd.Expiration
	}
	if cmd.Location != nil {
		item.Location = *cmd.Location
	}
	item.UpdatedAt = s.now()

	if err := item.Validate(); err != nil {
		return nil, errors.NewAppError(errors.CodeInvalidPantryItem, "Invalid pantry item", err.Error())
	}
	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, errors.NewDatabaseError("update pantry item", err)
	}

	dto := itemToDTO(*item)
	return &dto, nil
}

// RemoveItem deletes an inventory item
func (s *PantryService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("load pantry item", err)
	}
	if item == nil {
		return errors.NewPantryItemNotFoundError(id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete pantry item", err)
	}
	s.logger.Info("Pantry item removed", zap.String("item_id", id.String()))
	return nil
}

// GetItem returns a single inventory item
func (s *PantryService) GetItem(ctx context.Context, id uuid.UUID) (*inbound.InventoryItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(id.String())
	}
	dto := itemToDTO(*item)
	return &dto, nil
}

// ListItems returns the full inventory
func (s *PantryService) ListItems(ctx context.Context) ([]inbound.InventoryItemDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}
	dtos := make([]inbound.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	return dtos, nil
}

// ListExpiring returns items expiring within the given window
func (s *PantryService) ListExpiring(ctx context.Context, within time.Duration) ([]inbound.InventoryItemDTO, error) {
	cutoff := s.now().Add(within)
	items, err := s.repo.FindExpiringBefore(ctx, cutoff)
	if err != nil {
		return nil, errors.NewDatabaseError("list expiring pantry items", err)
	}
	dtos := make([]inbound.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	return dtos, nil
}

func itemToDTO(item domain.InventoryItem) inbound.InventoryItemDTO {
	return inbound.InventoryItemDTO{
		ID:         item.ID,
		Name:       item.Name,
		Category:   string(item.Category),
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Expiration: item.Expiration,
		Location:   item.Location,
		AddedAt:    item.AddedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
