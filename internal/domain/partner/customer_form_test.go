package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() CustomerFormInput {
	return CustomerFormInput{
		Name:    "Amy Burns",
		Email:   "amy@burns.com",
		Phone:   "555-123-4567",
		Address: "126 High Street, Springfield",
	}
}

func TestParseCustomerForm_Valid(t *testing.T) {
	form, errs := ParseCustomerForm(validCustomerInput())

	require.False(t, errs.HasErrors())
	require.NotNil(t, form)
	assert.Equal(t, "Amy Burns", form.Name)
	assert.Equal(t, "amy@burns.com", form.Email)
}

func TestParseCustomerForm_NameBoundary(t *testing.T) {
	in := validCustomerInput()

	in.Name = "Amy B" // 5 characters
	form, errs := ParseCustomerForm(in)
	assert.Nil(t, form)
	assert.Equal(t, []string{MsgNameTooShort}, errs["name"])

	in.Name = "Amy Bu" // 6 characters
	_, errs = ParseCustomerForm(in)
	assert.False(t, errs.HasErrors())
}

func TestParseCustomerForm_MultiByteNamesCountCharacters(t *testing.T) {
	in := validCustomerInput()

	in.Name = "Ангел" // 5 characters, 10 bytes
	form, errs := ParseCustomerForm(in)
	assert.Nil(t, form)
	assert.Equal(t, []string{MsgNameTooShort}, errs["name"])

	in.Name = "Ангела" // 6 characters
	_, errs = ParseCustomerForm(in)
	assert.False(t, errs.HasErrors())
}

func TestParseCustomerForm_Email(t *testing.T) {
	in := validCustomerInput()
	for _, email := range []string{"", "plainaddress", "a@b", "user@host.", "@host.com"} {
		in.Email = email
		form, errs := ParseCustomerForm(in)
		assert.Nil(t, form, "email %q", email)
		assert.Equal(t, []string{MsgEmailInvalid}, errs["email"], "email %q", email)
	}

	// surrounding whitespace is trimmed, not rejected
	in.Email = "  amy@burns.com  "
	form, errs := ParseCustomerForm(in)
	require.False(t, errs.HasErrors())
	assert.Equal(t, "amy@burns.com", form.Email)
}

func TestParseCustomerForm_PhoneBoundary(t *testing.T) {
	in := validCustomerInput()

	in.Phone = "555-12345" // 9 characters
	form, errs := ParseCustomerForm(in)
	assert.Nil(t, form)
	assert.Equal(t, []string{MsgPhoneTooShort}, errs["phone"])

	in.Phone = "555-123456" // 10 characters
	_, errs = ParseCustomerForm(in)
	assert.False(t, errs.HasErrors())
}

func TestParseCustomerForm_Address(t *testing.T) {
	in := validCustomerInput()
	in.Address = "   "

	form, errs := ParseCustomerForm(in)

	assert.Nil(t, form)
	assert.Equal(t, []string{MsgAddressEmpty}, errs["address"])
}

func TestParseCustomerForm_CollectsAllErrors(t *testing.T) {
	form, errs := ParseCustomerForm(CustomerFormInput{})

	assert.Nil(t, form)
	assert.Len(t, errs, 4)
}
