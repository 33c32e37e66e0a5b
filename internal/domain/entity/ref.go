package entity

import (
	"bytes"
	"encoding/json"
)

// Ref referencia a otra entidad (cliente, usuario, producto) tal como llega en registros
// históricos del backend: a veces un string con el nombre, a veces un id numérico
// y a veces el objeto anidado. Se resuelve una sola vez al decodificar.
type Ref struct {
	ID   uint
	Name string
	SKU  string
}

type refObject struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
	SKU  string `json:"sku,omitempty"`
}

// refFields se decodifica campo a campo para que un sub-objeto corrupto
// ({"id":"7"}, {"nome":3}) no aborte el registro que lo contiene.
type refFields struct {
	ID   json.RawMessage `json:"id"`
	Name json.RawMessage `json:"nome"`
	SKU  json.RawMessage `json:"sku"`
}

// UnmarshalJSON acepta string, número, objeto o null. Nunca falla por la forma del valor.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = Ref{}
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		r.Name = scalarText(data)
	case '{':
		var obj refFields
		if json.Unmarshal(data, &obj) != nil {
			return nil
		}
		r.ID = scalarID(obj.ID)
		r.Name = scalarText(obj.Name)
		r.SKU = scalarText(obj.SKU)
	default:
		// id crudo; si no es un entero sin signo se ignora
		r.ID = scalarID(data)
	}
	return nil
}

// MarshalJSON serializa siempre en la forma de objeto.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(refObject{ID: r.ID, Name: r.Name, SKU: r.SKU})
}

// IsZero indica que la referencia no trae ni id ni nombre.
func (r Ref) IsZero() bool {
	return r.ID == 0 && r.Name == "" && r.SKU == ""
}

// DisplayName devuelve el nombre o fallback si no hay nombre.
func (r Ref) DisplayName(fallback string) string {
	if r.Name != "" {
		return r.Name
	}
	return fallback
}

// SKUOr devuelve el SKU o fallback.
func (r Ref) SKUOr(fallback string) string {
	if r.SKU != "" {
		return r.SKU
	}
	return fallback
}
