package billing

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Filename NF-e_<numero>_<cliente>.pdf. Sin número usa el id de la venda; el nombre del
// cliente pierde acentos y cada tramo no alfanumérico pasa a un único "_".
func Filename(sale *dto.SaleResponse) string {
	number := ""
	if sale.Invoice != nil {
		number = strings.TrimSpace(sale.Invoice.Number)
	}
	if number == "" {
		number = strconv.FormatUint(uint64(sale.ID), 10)
	}
	return "NF-e_" + sanitize(number, "") + "_" + sanitize(sale.Client.Name, FallbackFileTag) + ".pdf"
}

func sanitize(s, fallback string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	out := strings.Trim(nonAlnum.ReplaceAllString(folded, "_"), "_")
	if out == "" {
		return fallback
	}
	return out
}
