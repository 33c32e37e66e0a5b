package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes se muestran al operador tal cual; por eso van en portugués.
var (
	ErrNotFound       = errors.New("recurso não encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("não autorizado")
	ErrForbidden      = errors.New("acesso negado")
	ErrSessionExpired = errors.New("sessão expirada")

	// El backend respondió 2xx pero el cuerpo no se pudo leer. En operaciones que
	// escriben, la operación ya quedó registrada.
	ErrUnreadableResponse = errors.New("resposta do backend ilegível")

	// Carrinho / finalização de venda
	ErrEmptyCart      = errors.New("carrinho vazio")
	ErrClientRequired = errors.New("selecione um cliente")

	// Ajuste de estoque
	ErrInvalidQuantity = errors.New("quantidade deve ser um inteiro positivo")
	ErrInvalidOrigin   = errors.New("origem inválida para o tipo de movimentação")
	ErrInvalidProduct  = errors.New("produto inválido")

	// Nota fiscal
	ErrInvoiceNoItems    = errors.New("venda não possui itens")
	ErrInvoiceMissing    = errors.New("esta venda não possui nota fiscal")
	ErrSaleMissing       = errors.New("dados da venda não fornecidos")
	ErrAccessKeyMismatch = errors.New("chave de acesso do XML não confere com a nota fiscal")
)
