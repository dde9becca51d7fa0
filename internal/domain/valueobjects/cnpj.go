package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCNPJ = errors.New("invalid cnpj")
)

// CNPJ é um value object para o identificador fiscal de empresas.
// Aceita entrada com ou sem máscara (12.345.678/0001-99) e guarda
// apenas os 14 dígitos.
type CNPJ struct {
	value string
}

// NewCNPJ cria um novo CNPJ validado pelos dígitos verificadores
func NewCNPJ(raw string) (CNPJ, error) {
	digits := onlyDigits(raw)

	if !isValidCNPJ(digits) {
		return CNPJ{}, ErrInvalidCNPJ
	}

	return CNPJ{value: digits}, nil
}

// String retorna os 14 dígitos sem máscara
func (c CNPJ) String() string {
	return c.value
}

// Formatted retorna o CNPJ com a máscara padrão 00.000.000/0000-00
func (c CNPJ) Formatted() string {
	v := c.value
	return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isValidCNPJ aplica o algoritmo de dígitos verificadores da Receita Federal
func isValidCNPJ(digits string) bool {
	if len(digits) != 14 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}

	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	if cnpjCheckDigit(digits[:12], weights1) != int(digits[12]-'0') {
		return false
	}
	return cnpjCheckDigit(digits[:13], weights2) == int(digits[13]-'0')
}

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
