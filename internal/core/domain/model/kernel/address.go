package kernel

import (
	"errors"
	"fmt"

	"salesledger/internal/pkg/errs"
	"salesledger/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a postal address used both for customer records and for
// the shipping-address snapshot carried by an order. Address is an immutable
// value object: two addresses are equal when all their components are equal.
// The zero value of Address is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "Germany")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: Obere Str. 57, Berlin, Germany
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	country string
	guard   guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified components.
// All three components are required and must be non-empty.
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error if any component is missing
func NewAddress(street string, city string, country string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// Country returns the country component of the address.
func (a Address) Country() string {
	return a.country
}

// String returns a human-readable single-line representation of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.city, a.country)
}

// IsEqual compares two addresses component by component.
// Both addresses must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if all components match, false otherwise
//   - error: Validation error if either address is improperly constructed
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.street == other.street &&
		a.city == other.city &&
		a.country == other.country, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
