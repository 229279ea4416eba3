package orderrepo

import (
	"context"
	"errors"

	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and returns the aggregate restored
// with the identifier the database assigned. A duplicate product in the
// order's lines surfaces as a ValueIsInvalidError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines", err)
		}
		return nil, err
	}

	created, err := order.RestoreOrder(
		dto.ID,
		aggregate.CustomerID(),
		aggregate.Discount(),
		aggregate.ShippingAddress(),
		aggregate.Lines(),
		aggregate.PlacedAt(),
		aggregate.ShippedAt(),
	)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Update saves an existing order to the database.
// Lines are immutable after creation, so only the order row is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_id", "placed_at", "shipped_at", "discount",
			"shipping_street", "shipping_city", "shipping_country").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderId", dto.ID, gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID with a row-level lock.
// Concurrent shipment recordings for the same order serialize on this lock
// until the surrounding transaction commits or rolls back.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id int, forUpdate bool) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_id")
	}).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
