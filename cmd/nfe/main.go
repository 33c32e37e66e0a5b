// nfe genera el DANFE (PDF) de una venda guardada en JSON, sin pasar por el backend.
//
// Uso: go run ./cmd/nfe venda.json [directorio_salida]
// Con "-" como archivo lee la venda de stdin. Con un .xml imprime los datos de la NF-e.
// Escribe: <directorio_salida>/NF-e_<numero>_<cliente>.pdf
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/infostock-dashboard/internal/application/billing"
	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/nfexml"
	infrapdf "github.com/jhoicas/infostock-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/infostock-dashboard/pkg/config"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
	"github.com/jhoicas/infostock-dashboard/pkg/nfe"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: nfe <venda.json|nota.xml|-> [directorio_salida]")
		os.Exit(2)
	}
	input := os.Args[1]
	outDir := "."
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	raw, err := readInput(input)
	if err != nil {
		log.Fatal().Err(err).Str("archivo", input).Msg("leer entrada")
	}

	if strings.EqualFold(filepath.Ext(input), ".xml") {
		info, err := nfexml.NewInspector().Parse(raw)
		if err != nil {
			log.Fatal().Err(err).Msg("XML inválido")
		}
		fmt.Printf("chave: %s\nnúmero: %s\nsérie: %s\nemissão: %s\ntotal: %s\n",
			nfe.FormatAccessKey(info.AccessKey), info.Number, info.Series, info.IssuedAt, info.Total)
		key, err := nfe.ParseAccessKey(info.AccessKey)
		if err != nil {
			fmt.Println("dígito verificador: inválido")
			os.Exit(1)
		}
		fmt.Printf("UF: %s\nCNPJ emitente: %s\nmodelo: %s\n", key.State(), key.IssuerCNPJ, key.Model)
		return
	}

	var sale dto.SaleResponse
	if err := json.Unmarshal(raw, &sale); err != nil {
		log.Fatal().Err(err).Msg("JSON de venda inválido")
	}

	uc := billing.NewPDFUseCase(billing.NewAssembler(cfg.App.Location()), infrapdf.NewMarotoDANFERenderer(), nil, log)
	data, filename, err := uc.Generate(context.Background(), &sale)
	if err != nil {
		log.Fatal().Err(err).Msg(billing.UserMessage(err))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de salida")
	}
	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir PDF")
	}
	fmt.Println(path)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
