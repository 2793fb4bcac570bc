package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

func TestParseInvoiceForm_Valid(t *testing.T) {
	input, errs := ParseInvoiceForm(map[string]string{
		"customer_id": "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		"amount":      " 50.00 ",
		"status":      "paid",
	})

	require.Nil(t, errs)
	require.NotNil(t, input)
	assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", input.CustomerID)
	assert.Equal(t, "50", input.Amount.String())
	assert.Equal(t, domain.InvoiceStatusPaid, input.Status)
}

func TestParseInvoiceForm_LargestAmount(t *testing.T) {
	input, errs := ParseInvoiceForm(map[string]string{
		"customer_id": "c1",
		"amount":      "21474836.47",
		"status":      "paid",
	})

	require.Nil(t, errs)
	assert.Equal(t, "21474836.47", input.Amount.String())
}

func TestParseInvoiceForm_FieldErrors(t *testing.T) {
	tests := []struct {
		name string
		form map[string]string
		want FieldErrors
	}{
		{
			name: "zero amount",
			form: map[string]string{"customer_id": "c1", "amount": "0", "status": "pending"},
			want: FieldErrors{"amount": {"Amount must be greater than $0"}},
		},
		{
			name: "negative amount",
			form: map[string]string{"customer_id": "c1", "amount": "-10", "status": "pending"},
			want: FieldErrors{"amount": {"Amount must be greater than $0"}},
		},
		{
			name: "blank amount coerces to zero",
			form: map[string]string{"customer_id": "c1", "amount": "", "status": "pending"},
			want: FieldErrors{"amount": {"Amount must be greater than $0"}},
		},
		{
			name: "amount is not a number",
			form: map[string]string{"customer_id": "c1", "amount": "ten", "status": "pending"},
			want: FieldErrors{"amount": {"Expected number, received nan"}},
		},
		{
			name: "amount too large for the invoices table",
			form: map[string]string{"customer_id": "c1", "amount": "21474836.48", "status": "pending"},
			want: FieldErrors{"amount": {"Amount must be at most $21,474,836.47"}},
		},
		{
			name: "amount beyond int64 cents",
			form: map[string]string{"customer_id": "c1", "amount": "184467440737095516.21", "status": "pending"},
			want: FieldErrors{"amount": {"Amount must be at most $21,474,836.47"}},
		},
		{
			name: "missing customer",
			form: map[string]string{"amount": "10", "status": "paid"},
			want: FieldErrors{"customer_id": {"Please select a customer"}},
		},
		{
			name: "unknown status",
			form: map[string]string{"customer_id": "c1", "amount": "10", "status": "overdue"},
			want: FieldErrors{"status": {"Please select a status"}},
		},
		{
			name: "empty form",
			form: map[string]string{},
			want: FieldErrors{
				"customer_id": {"Please select a customer"},
				"amount":      {"Amount must be greater than $0"},
				"status":      {"Please select a status"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, errs := ParseInvoiceForm(tt.form)

			assert.Nil(t, input)
			assert.Equal(t, tt.want, errs)
		})
	}
}
