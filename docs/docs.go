// Package docs registra la especificación OpenAPI del dashboard en swag.
// swagger.json se sirve en /docs vía contrib/swagger y en /openapi.json vía ReadDoc.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo información de la API exportada.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "InfoStock Dashboard API",
	Description:      "Carrinho de vendas, ajustes de estoque y NF-e sobre el backend InfoStock.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
