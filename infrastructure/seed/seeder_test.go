package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestDefaultFixtures(t *testing.T) {
	fixtures := DefaultFixtures()

	customers := make(map[string]bool, len(fixtures.Customers))
	for _, customer := range fixtures.Customers {
		_, err := uuid.Parse(customer.ID)
		require.NoError(t, err, customer.Name)
		customers[customer.ID] = true
	}

	ids := make(map[string]bool, len(fixtures.Invoices))
	for _, invoice := range fixtures.Invoices {
		_, err := uuid.Parse(invoice.ID)
		require.NoError(t, err)
		assert.False(t, ids[invoice.ID], "duplicate invoice %s", invoice.ID)
		ids[invoice.ID] = true

		assert.True(t, customers[invoice.CustomerID], "invoice %s references unknown customer", invoice.ID)
		assert.True(t, invoice.Status.IsValid())
		assert.GreaterOrEqual(t, invoice.Amount, int64(0))
	}

	months := make(map[string]bool, len(fixtures.Revenue))
	for _, revenue := range fixtures.Revenue {
		assert.LessOrEqual(t, len(revenue.Month), 4)
		assert.False(t, months[revenue.Month], "duplicate month %s", revenue.Month)
		months[revenue.Month] = true
	}
}

func TestSeeder_hashPasswords(t *testing.T) {
	seeder := NewSeeder(nil, WithHashCost(bcrypt.MinCost))
	users := []*domain.User{{ID: "1", Email: "user@nextmail.com", Password: "123456"}}

	hashed, err := seeder.hashPasswords(users)

	require.NoError(t, err)
	require.Len(t, hashed, 1)
	assert.Equal(t, "123456", users[0].Password)
	assert.NotEqual(t, "123456", hashed[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed[0].Password), []byte("123456")))
}
