package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"http://", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidURL(tt.in), "IsValidURL(%q)", tt.in)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail(""))
	assert.True(t, IsValidEmail("alex.doe@example.com"))
	assert.False(t, IsValidEmail("alex@example"))
	assert.False(t, IsValidEmail("alex doe@example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestFieldRulesCheck(t *testing.T) {
	v := New()
	rules := FieldRules{
		"name":  {Required("Project name is required.")},
		"image": {URL()},
		"email": {Required(""), Email()},
	}

	assert.Equal(t, "Project name is required.", rules.Check(v, "name", "   "))
	assert.Equal(t, "", rules.Check(v, "name", "Portfolio"))
	assert.Equal(t, MsgURL, rules.Check(v, "image", "picsum"))
	assert.Equal(t, "", rules.Check(v, "image", ""))
	assert.Equal(t, MsgRequired, rules.Check(v, "email", ""))
	assert.Equal(t, MsgEmail, rules.Check(v, "email", "nope"))
	assert.Equal(t, "", rules.Check(v, "unknown", ""))
}
