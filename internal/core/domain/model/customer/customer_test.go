package customer_test

import (
	"testing"

	"salesledger/internal/core/domain/model/customer"
	"salesledger/internal/core/domain/model/kernel"
	"salesledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlinAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "Germany")
	require.NoError(t, err)
	return addr
}

func TestNewCustomer_ValidInput(t *testing.T) {
	addr := berlinAddress(t)

	c, err := customer.NewCustomer("0COM", "Alfreds Futterkiste", customer.Standard, addr)
	require.NoError(t, err)

	assert.Equal(t, "0COM", c.ID())
	assert.Equal(t, "Alfreds Futterkiste", c.Name())
	assert.Equal(t, customer.Standard, c.Tier())
	assert.Equal(t, addr, c.Address())
	require.NoError(t, c.Validate())
}

func TestNewCustomer_InvalidInput(t *testing.T) {
	addr := berlinAddress(t)

	tests := []struct {
		name      string
		id        string
		compName  string
		tier      customer.Tier
		address   kernel.Address
		expectErr error
	}{
		{
			name:      "empty id",
			id:        "",
			compName:  "Alfreds Futterkiste",
			tier:      customer.Standard,
			address:   addr,
			expectErr: errs.ErrValueIsRequired,
		},
		{
			name:      "empty name",
			id:        "0COM",
			compName:  "",
			tier:      customer.Standard,
			address:   addr,
			expectErr: errs.ErrValueIsRequired,
		},
		{
			name:      "invalid tier",
			id:        "0COM",
			compName:  "Alfreds Futterkiste",
			tier:      customer.Unknown,
			address:   addr,
			expectErr: errs.ErrValueIsInvalid,
		},
		{
			name:      "zero value address",
			id:        "0COM",
			compName:  "Alfreds Futterkiste",
			tier:      customer.Standard,
			address:   kernel.Address{},
			expectErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := customer.NewCustomer(tt.id, tt.compName, tt.tier, tt.address)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("nil customer fails validation", func(t *testing.T) {
		var c *customer.Customer
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})

	t.Run("zero value customer fails validation", func(t *testing.T) {
		c := &customer.Customer{}
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	addr := berlinAddress(t)

	a, err := customer.NewCustomer("0COM", "Alfreds Futterkiste", customer.Standard, addr)
	require.NoError(t, err)
	b, err := customer.NewCustomer("0COM", "Renamed Company", customer.Large, addr)
	require.NoError(t, err)
	c, err := customer.NewCustomer("2COM", "Blondel père et fils", customer.Large, addr)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b), "customers with the same id are the same customer")
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestCustomer_AddressIsValueCopy(t *testing.T) {
	addr := berlinAddress(t)
	c, err := customer.NewCustomer("0COM", "Alfreds Futterkiste", customer.Standard, addr)
	require.NoError(t, err)

	got := c.Address()
	equal, err := got.IsEqual(addr)
	require.NoError(t, err)
	assert.True(t, equal)
}
