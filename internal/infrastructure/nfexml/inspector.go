// Package nfexml lee el XML firmado de una NF-e (nfeProc / NFe) sin modificarlo.
package nfexml

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

var accessKeyID = regexp.MustCompile(`^NFe(\d{44})$`)

// Info datos de identificación de la nota dentro del XML.
type Info struct {
	AccessKey string // 44 dígitos, sin el prefijo "NFe"
	Number    string // ide/nNF
	Series    string // ide/serie
	IssuedAt  string // ide/dhEmi
	Total     string // total/ICMSTot/vNF
}

// Inspector implementa billing.XMLInspector con etree.
type Inspector struct{}

// NewInspector construye el inspector.
func NewInspector() *Inspector { return &Inspector{} }

// AccessKey devuelve la chave de acesso declarada en infNFe/@Id.
func (i *Inspector) AccessKey(xml []byte) (string, error) {
	info, err := i.Parse(xml)
	if err != nil {
		return "", err
	}
	return info.AccessKey, nil
}

// Parse extrae Info. Un XML sin infNFe o con un Id mal formado es error.
func (i *Inspector) Parse(xml []byte) (*Info, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xml); err != nil {
		return nil, fmt.Errorf("nfexml: parsear XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("nfexml: documento sin raíz")
	}

	inf := doc.FindElement("//infNFe")
	if inf == nil {
		return nil, fmt.Errorf("nfexml: no se encontró infNFe")
	}
	id := strings.TrimSpace(inf.SelectAttrValue("Id", ""))
	m := accessKeyID.FindStringSubmatch(id)
	if m == nil {
		return nil, fmt.Errorf("nfexml: Id de infNFe inválido %q", id)
	}

	return &Info{
		AccessKey: m[1],
		Number:    childText(inf, "ide/nNF"),
		Series:    childText(inf, "ide/serie"),
		IssuedAt:  childText(inf, "ide/dhEmi"),
		Total:     childText(inf, "total/ICMSTot/vNF"),
	}, nil
}

func childText(e *etree.Element, path string) string {
	if c := e.FindElement(path); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
