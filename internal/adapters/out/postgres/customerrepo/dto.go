// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"salesledger/internal/core/domain/model/customer"
	"salesledger/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The customer code is the natural primary key, matching the identifiers used
// on invoices and order documents.
type CustomerDTO struct {
	ID      string     `gorm:"type:varchar(5);primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Tier    int        `gorm:"type:int;not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded postal address within the customer table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(255);not null"`
	Country string `gorm:"type:varchar(255);not null"`
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:   customer.ID(),
		Name: customer.Name(),
		Tier: int(customer.Tier()),
		Address: AddressDTO{
			Street:  customer.Address().Street(),
			City:    customer.Address().City(),
			Country: customer.Address().Country(),
		},
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Country)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(dto.ID, dto.Name, customer.Tier(dto.Tier), address)
}
