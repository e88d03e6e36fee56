// Package brdoc valida documentos fiscales brasileños (CNPJ y CPF) con el
// algoritmo de dígitos verificadores módulo 11 de la Receita Federal.
package brdoc

import (
	"fmt"
	"unicode"
)

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Digits extrae solo los dígitos (acepta "11.222.333/0001-81", "529.982.247-25", etc.).
func Digits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// ValidateCNPJ verifica longitud (14 dígitos) y los dos dígitos verificadores.
func ValidateCNPJ(doc string) error {
	d := Digits(doc)
	if len(d) != 14 {
		return fmt.Errorf("brdoc: CNPJ debe tener 14 dígitos, se encontraron %d", len(d))
	}
	if allSame(d) {
		return fmt.Errorf("brdoc: CNPJ inválido")
	}
	dv1 := mod11(d[:12], cnpjWeights1)
	dv2 := mod11(d[:12]+string(rune('0'+dv1)), cnpjWeights2)
	if int(d[12]-'0') != dv1 || int(d[13]-'0') != dv2 {
		return fmt.Errorf("brdoc: dígitos verificadores del CNPJ inválidos")
	}
	return nil
}

// ValidateCPF verifica longitud (11 dígitos) y los dos dígitos verificadores.
func ValidateCPF(doc string) error {
	d := Digits(doc)
	if len(d) != 11 {
		return fmt.Errorf("brdoc: CPF debe tener 11 dígitos, se encontraron %d", len(d))
	}
	if allSame(d) {
		return fmt.Errorf("brdoc: CPF inválido")
	}
	for pos := 9; pos <= 10; pos++ {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		dv := (sum * 10) % 11
		if dv == 10 {
			dv = 0
		}
		if int(d[pos]-'0') != dv {
			return fmt.Errorf("brdoc: dígitos verificadores del CPF inválidos")
		}
	}
	return nil
}

// FormatCNPJ devuelve el CNPJ con máscara XX.XXX.XXX/XXXX-XX; si no tiene 14 dígitos lo devuelve sin cambios.
func FormatCNPJ(doc string) string {
	d := Digits(doc)
	if len(d) != 14 {
		return doc
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func mod11(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
