package domain

import "strings"

const (
	cpfDigits = 11
	pinMin    = 4
	pinMax    = 8
)

// NormalizeDigits strips every non-digit rune from s.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf is an already-normalized 11-digit identifier.
func ValidCPF(cpf string) bool {
	return len(cpf) == cpfDigits && cpf == NormalizeDigits(cpf)
}

// ValidPIN reports whether pin is an already-normalized 4 to 8 digit PIN.
func ValidPIN(pin string) bool {
	return len(pin) >= pinMin && len(pin) <= pinMax && pin == NormalizeDigits(pin)
}
