package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^TES-\d{13}-[A-Z0-9]{6}$`)

func TestNewCertificateCode_Format(t *testing.T) {
	code := NewCertificateCode()
	assert.Regexp(t, codePattern, code)
}

func TestNewCertificateCode_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewCertificateCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}
