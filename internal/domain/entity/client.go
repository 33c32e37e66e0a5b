package entity

// Client representa un cliente (destinatario de la venta).
type Client struct {
	ID     uint   `json:"id"`
	Name   string `json:"nome"`
	TaxID  string `json:"cpf_cnpj"` // CPF o CNPJ; nunca se imprime completo
	Email  string `json:"email"`
	Phone  string `json:"telefone"`
	Active bool   `json:"ativo"`
}
