package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Amy Burns", "amy@burns.com", "555-123-4567",
		"126 High Street", "https://randomuser.me/api/portraits")

	require.NoError(t, err)
	assert.Equal(t, "Amy Burns", c.Name)
	assert.Equal(t, "https://randomuser.me/api/portraits", c.ImageURL)
	assert.NotEqual(t, "", c.ID.String())
}

func TestNewCustomer_LengthsCountCharacters(t *testing.T) {
	_, err := NewCustomer("Ангел", "a@b.com", "555-123-4567", "addr", "img")
	assert.Error(t, err, "5 character name must be rejected regardless of byte length")

	c, err := NewCustomer("Ангела", "a@b.com", "５５５１２３４５６７", "addr", "img")
	require.NoError(t, err)
	assert.Equal(t, "Ангела", c.Name)
}
