package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvoiceInput() InvoiceFormInput {
	return InvoiceFormInput{
		CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Amount:     "250.75",
		Status:     "pending",
		Note:       "Monthly retainer",
	}
}

func TestParseInvoiceForm_Valid(t *testing.T) {
	form, errs := ParseInvoiceForm(validInvoiceInput())

	require.False(t, errs.HasErrors())
	require.NotNil(t, form)
	assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", form.CustomerID)
	assert.Equal(t, int64(25075), form.AmountCents)
	assert.Equal(t, InvoiceStatusPending, form.Status)
	assert.Equal(t, "Monthly retainer", form.Note)
}

func TestParseInvoiceForm_AmountConversion(t *testing.T) {
	cases := []struct {
		amount string
		cents  int64
	}{
		{"1", 100},
		{"0.01", 1},
		{"99.99", 9999},
		{"10.005", 1000}, // sub-cent precision rounds to nearest cent
		{"10.006", 1001},
	}

	for _, tc := range cases {
		in := validInvoiceInput()
		in.Amount = tc.amount
		form, errs := ParseInvoiceForm(in)
		require.False(t, errs.HasErrors(), "amount %s", tc.amount)
		assert.Equal(t, tc.cents, form.AmountCents, "amount %s", tc.amount)
	}
}

func TestParseInvoiceForm_MissingCustomer(t *testing.T) {
	in := validInvoiceInput()
	in.CustomerID = ""

	form, errs := ParseInvoiceForm(in)

	assert.Nil(t, form)
	assert.Equal(t, []string{MsgSelectCustomer}, errs["customerId"])
}

func TestParseInvoiceForm_BadAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "0", "-5", "12,50"} {
		in := validInvoiceInput()
		in.Amount = amount

		form, errs := ParseInvoiceForm(in)

		assert.Nil(t, form, "amount %q", amount)
		assert.Equal(t, []string{MsgAmountTooSmall}, errs["amount"], "amount %q", amount)
	}
}

func TestParseInvoiceForm_BadStatus(t *testing.T) {
	for _, status := range []string{"", "open", "PAID"} {
		in := validInvoiceInput()
		in.Status = status

		form, errs := ParseInvoiceForm(in)

		assert.Nil(t, form, "status %q", status)
		assert.Equal(t, []string{MsgSelectStatus}, errs["status"], "status %q", status)
	}
}

func TestParseInvoiceForm_NoteBounds(t *testing.T) {
	in := validInvoiceInput()
	in.Note = strings.Repeat("a", NoteMaxLength)
	form, errs := ParseInvoiceForm(in)
	require.False(t, errs.HasErrors())
	assert.Len(t, form.Note, NoteMaxLength)

	in.Note = strings.Repeat("a", NoteMaxLength+1)
	form, errs = ParseInvoiceForm(in)
	assert.Nil(t, form)
	assert.Equal(t, []string{MsgNoteTooLong}, errs["note"])

	in.Note = ""
	form, errs = ParseInvoiceForm(in)
	assert.Nil(t, form)
	assert.Equal(t, []string{MsgNoteTooLong}, errs["note"])
}

func TestParseInvoiceForm_CollectsAllErrors(t *testing.T) {
	form, errs := ParseInvoiceForm(InvoiceFormInput{})

	assert.Nil(t, form)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "customerId")
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "note")
}
