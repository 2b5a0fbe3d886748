package validation

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersUsernameValidation(t *testing.T) {
	Init()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	assert.NoError(t, v.Var("alice", "username"))
	assert.Error(t, v.Var("alice' OR '1'='1", "username"))
	assert.Error(t, v.Var("", "username"))

	// The strict policy evaluates through the same registered engine.
	assert.True(t, Strict().AcceptUsername("alice"))
	assert.False(t, Strict().AcceptUsername("alice' OR '1'='1"))
}

func TestValidUsername(t *testing.T) {
	valid := []string{"alice", "bob_smith", "a.b-c", "x", strings.Repeat("a", 64)}
	for _, u := range valid {
		assert.True(t, ValidUsername(u), "expected %q to be valid", u)
	}

	invalid := []string{
		"",
		"alice' OR '1'='1",
		"bob;drop table users",
		"name with spaces",
		"tilde~",
		strings.Repeat("a", 65),
	}
	for _, u := range invalid {
		assert.False(t, ValidUsername(u), "expected %q to be invalid", u)
	}
}

func TestValidSearch(t *testing.T) {
	assert.True(t, ValidSearch(""))
	assert.True(t, ValidSearch("alice@example.com"))
	assert.True(t, ValidSearch("first last"))
	assert.True(t, ValidSearch("a+b-c_d.e"))
	assert.True(t, ValidSearch(strings.Repeat("a", 128)))

	assert.False(t, ValidSearch(strings.Repeat("a", 129)))
	assert.False(t, ValidSearch("it's"))
	assert.False(t, ValidSearch("x; SELECT 1"))
	assert.False(t, ValidSearch("100%"))
}

func TestStrictPolicy(t *testing.T) {
	p := Strict()
	assert.True(t, p.AcceptUsername("alice"))
	assert.False(t, p.AcceptUsername("alice' OR '1'='1"))
	assert.Equal(t, "alice", p.SanitizeSearch("alice"))
	assert.Equal(t, "", p.SanitizeSearch("' UNION SELECT"))
	assert.Equal(t, "", p.SanitizeSearch(strings.Repeat("x", 200)))
}

func TestPermissivePolicy(t *testing.T) {
	p := Permissive()
	payload := "alice' OR '1'='1"
	assert.True(t, p.AcceptUsername(payload))
	assert.Equal(t, payload, p.SanitizeSearch(payload))
}
