package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin_CaseInsensitive(t *testing.T) {
	admins := NewAdmins([]string{"Admin@TesCursos.com.br"})

	assert.True(t, admins.IsAdmin("admin@tescursos.com.br", nil))
	assert.True(t, admins.IsAdmin("ADMIN@tescursos.com.BR", nil))
	assert.Equal(t,
		admins.IsAdmin("Foo@X.com", nil),
		admins.IsAdmin("foo@x.com", nil))
}

func TestIsAdmin_MetadataFlag(t *testing.T) {
	admins := NewAdmins(nil)

	assert.True(t, admins.IsAdmin("anyone@test.com", map[string]interface{}{"admin": true}))
	assert.False(t, admins.IsAdmin("anyone@test.com", map[string]interface{}{"admin": false}))
	assert.False(t, admins.IsAdmin("anyone@test.com", map[string]interface{}{"admin": "yes"}))
}

func TestIsAdmin_EmptyEmail(t *testing.T) {
	admins := NewAdmins([]string{"admin@tescursos.com.br"})

	assert.False(t, admins.IsAdmin("", nil))
	assert.False(t, admins.IsAdmin("", map[string]interface{}{"admin": true}))
}
