package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.domain.io", "x+tag@unholy.dev"}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "a@b", "a b@c.com", "a@ b.com", "@b.co", "a@.", "plain"}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), "expected %q to be invalid", s)
	}
}

func TestFirstMissing(t *testing.T) {
	sub := map[string]string{"name": "Asha", "email": "a@b.co", "message": "   "}

	assert.Equal(t, "", FirstMissing(sub, "name", "email"))
	assert.Equal(t, "message", FirstMissing(sub, "name", "message"))
	assert.Equal(t, "phone", FirstMissing(sub, "phone"))
}
