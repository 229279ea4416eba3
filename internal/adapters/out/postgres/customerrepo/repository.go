package customerrepo

import (
	"context"
	"errors"

	"salesledger/internal/core/domain/model/customer"
	"salesledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
// Customers are reference data for order processing: business transactions
// read them but never modify them, so the repository carries no tracker.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer to the database.
// Used by data seeding and administrative flows.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a customer by its code.
func (r *GormCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
