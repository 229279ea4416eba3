package customer

import (
	"fmt"

	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Tier represents the size classification of a customer. It is a small closed
// tag decided once when the customer record is read, and it is the only input
// to the discount rule applied at order creation.
//
// Exactly two classifications exist:
//
//	Standard ── no discount
//	Large    ── fixed discount on every new order
type Tier int

const (
	// Unknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	Unknown Tier = iota

	// Standard is the classification for regular customers.
	// Standard customers receive no discount.
	Standard

	// Large is the classification for high-volume customers.
	// Large customers receive a fixed discount on new orders.
	Large
)

// largeCustomerDiscount is the fixed rate applied to orders of large-tier customers.
var largeCustomerDiscount = decimal.New(15, -2) // 0.15

// getTierStrings returns a map of Tier values to their string representations.
// All tiers are included for string conversion.
func getTierStrings() map[Tier]string {
	return map[Tier]string{
		Unknown:  "Unknown",
		Standard: "Standard",
		Large:    "Large",
	}
}

// getValidTierStrings returns a map of only valid Tier values.
// Only valid tiers are included to support validation.
func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Tier]string{
		Standard: "Standard",
		Large:    "Large",
	}
}

// Validate checks if the Tier value is valid.
//
// Valid tiers are: Standard, Large. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Tier values from external sources
// (e.g., database, API) are valid before use.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
//
// Returns "Standard" or "Large" for valid tiers, "Unknown" otherwise.
// This method implements the fmt.Stringer interface and is safe
// to call on any Tier value, including invalid ones.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Discount returns the discount rate applicable to the tier. This is the pure
// classification rule used at order creation: Large tier customers receive a
// fixed 0.15 rate, every other tier receives zero.
//
// The mapping is side-effect free and deterministic.
//
// Example:
//
//	customer.Large.Discount()    // 0.15
//	customer.Standard.Discount() // 0
func (t Tier) Discount() decimal.Decimal {
	if t == Large {
		return largeCustomerDiscount
	}
	return decimal.Zero
}
