package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text campo textual que el backend envía a veces como string y a veces como número
// (numero y serie de la nota fiscal, por ejemplo). null y formas desconocidas quedan vacías.
type Text string

// UnmarshalJSON nunca falla por la forma del valor.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(scalarText(data))
	return nil
}

func (t Text) String() string { return string(t) }

// scalarText texto de un escalar JSON: el string sin comillas o el número tal cual.
// Objetos, arrays, booleanos y null devuelven "".
func scalarText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch c := data[0]; {
	case c == '"':
		var s string
		if json.Unmarshal(data, &s) != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if json.Unmarshal(data, &n) != nil {
			return ""
		}
		return n.String()
	}
	return ""
}

// scalarID id positivo desde un número o un string numérico; 0 en cualquier otro caso.
func scalarID(data []byte) uint {
	n, err := strconv.ParseUint(scalarText(data), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
