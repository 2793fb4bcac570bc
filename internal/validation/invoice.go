// Package validation holds the schemas that raw form submissions are checked
// against before they reach storage.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/pkg/money"
)

const (
	FieldCustomerID = "customer_id"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const amountNotANumber = "Expected number, received nan"

var amountTooLarge = "Amount must be at most " + money.FormatCurrency(money.MaxMinorUnits)

var messages = map[string]string{
	FieldCustomerID: "Please select a customer",
	FieldAmount:     "Amount must be greater than $0",
	FieldStatus:     "Please select a status",
}

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// InvoiceInput is a validated invoice submission. Amount is in dollars.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     domain.InvoiceStatus
}

type invoiceForm struct {
	CustomerID string  `form:"customer_id" validate:"required"`
	Amount     float64 `form:"amount" validate:"gt=0"`
	Status     string  `form:"status" validate:"oneof=pending paid"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	return v
}

// ParseInvoiceForm checks the customer_id, amount and status fields of a form
// submission. It returns either the typed input or the errors of every
// invalid field, never both.
func ParseInvoiceForm(form map[string]string) (*InvoiceInput, FieldErrors) {
	fieldErrors := FieldErrors{}

	raw := invoiceForm{
		CustomerID: strings.TrimSpace(form[FieldCustomerID]),
		Status:     strings.TrimSpace(form[FieldStatus]),
	}

	amount, err := parseAmount(form[FieldAmount])
	switch {
	case err != nil:
		fieldErrors.add(FieldAmount, amountNotANumber)
	case !money.FitsMinorUnits(amount):
		fieldErrors.add(FieldAmount, amountTooLarge)
	default:
		raw.Amount = amount.InexactFloat64()
	}

	if err := validate.Struct(raw); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			// only reachable with a non-struct argument
			panic(err)
		}

		for _, fieldErr := range validationErrors {
			field := fieldErr.Field()
			if _, reported := fieldErrors[field]; reported {
				continue
			}
			fieldErrors.add(field, messages[field])
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &InvoiceInput{
		CustomerID: raw.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(raw.Status),
	}, nil
}

// parseAmount coerces a form value to a number. A blank value is zero.
func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(value)
}
