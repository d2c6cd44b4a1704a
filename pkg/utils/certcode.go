package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCertificateCode builds a validation code: fixed prefix, millisecond
// timestamp, short random suffix, upper-cased. Uniqueness is ultimately
// enforced by the certificates table, this only makes collisions unlikely.
func NewCertificateCode() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return strings.ToUpper(fmt.Sprintf("TES-%d-%s", time.Now().UnixMilli(), suffix))
}
