// Package nfe reglas de la chave de acesso de la NF-e (modelo 55): composición,
// dígito verificador módulo 11 y formato de exhibición.
package nfe

import (
	"fmt"
	"strings"
	"unicode"
)

// AccessKeyLength dígitos de una chave de acesso completa.
const AccessKeyLength = 44

// AccessKey componentes de la chave: cUF(2) AAMM(4) CNPJ(14) mod(2) série(3) nNF(9)
// tpEmis(1) cNF(8) cDV(1).
type AccessKey struct {
	UF           string // código IBGE
	YearMonth    string // AAMM
	IssuerCNPJ   string
	Model        string
	Series       string
	Number       string
	EmissionType string
	Code         string
	CheckDigit   byte
}

// State sigla del estado emisor ("" si el código no existe).
func (k AccessKey) State() string {
	return ufCodes[k.UF]
}

// códigos IBGE de unidades federativas.
var ufCodes = map[string]string{
	"11": "RO", "12": "AC", "13": "AM", "14": "RR", "15": "PA", "16": "AP", "17": "TO",
	"21": "MA", "22": "PI", "23": "CE", "24": "RN", "25": "PB", "26": "PE", "27": "AL", "28": "SE", "29": "BA",
	"31": "MG", "32": "ES", "33": "RJ", "35": "SP",
	"41": "PR", "42": "SC", "43": "RS",
	"50": "MS", "51": "MT", "52": "GO", "53": "DF",
}

// ParseAccessKey separa la chave (con o sin espacios) y valida su dígito verificador.
func ParseAccessKey(key string) (AccessKey, error) {
	digits := extractDigits(key)
	if len(digits) != AccessKeyLength {
		return AccessKey{}, fmt.Errorf("nfe: chave de acesso deve ter %d dígitos, se encontraron %d", AccessKeyLength, len(digits))
	}
	expected, err := ComputeCheckDigit(string(digits[:AccessKeyLength-1]))
	if err != nil {
		return AccessKey{}, err
	}
	if digits[AccessKeyLength-1] != expected {
		return AccessKey{}, fmt.Errorf("nfe: dígito verificador inválido: esperado %c, recibido %c", expected, digits[AccessKeyLength-1])
	}
	s := string(digits)
	return AccessKey{
		UF:           s[0:2],
		YearMonth:    s[2:6],
		IssuerCNPJ:   s[6:20],
		Model:        s[20:22],
		Series:       s[22:25],
		Number:       s[25:34],
		EmissionType: s[34:35],
		Code:         s[35:43],
		CheckDigit:   digits[43],
	}, nil
}

// ValidateAccessKey valida largo y dígito verificador.
func ValidateAccessKey(key string) error {
	_, err := ParseAccessKey(key)
	return err
}

// ComputeCheckDigit calcula el dígito verificador de los 43 primeros dígitos.
// Pesos 2..9 de derecha a izquierda; resto 0 o 1 da dígito 0.
func ComputeCheckDigit(first43 string) (byte, error) {
	digits := extractDigits(first43)
	if len(digits) != AccessKeyLength-1 {
		return 0, fmt.Errorf("nfe: se requieren %d dígitos para calcular el dígito verificador, se encontraron %d", AccessKeyLength-1, len(digits))
	}
	var sum int
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0', nil
	}
	return byte('0' + (11 - remainder)), nil
}

// FormatAccessKey agrupa la chave en bloques de 4 dígitos, como se imprime en el DANFE.
// Un valor que no tiene 44 dígitos se devuelve sin cambios.
func FormatAccessKey(key string) string {
	digits := extractDigits(key)
	if len(digits) != AccessKeyLength {
		return key
	}
	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.Write(digits[i : i+4])
	}
	return b.String()
}

// NormalizeAccessKey deja solo los dígitos de la chave (sin espacios, puntos ni prefijo "NFe").
func NormalizeAccessKey(key string) string {
	return string(extractDigits(key))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
