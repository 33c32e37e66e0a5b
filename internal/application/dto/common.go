package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PeriodQuery filtro de período (fechas YYYY-MM-DD) para listados y reportes.
type PeriodQuery struct {
	Start string `query:"data_inicio"`
	End   string `query:"data_fim"`
}
