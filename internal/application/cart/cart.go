// Package cart mantiene el carrinho de una venta en curso: líneas únicas por producto,
// cantidades y total recalculado en cada consulta. No persiste nada.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// Line una línea del carrinho con la foto (nombre, SKU, precio) del producto al agregarlo.
type Line struct {
	ProductID uint
	Name      string
	SKU       string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal precio unitario × cantidad.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart colección ordenada de líneas de una única sesión de venta.
// No es seguro para uso concurrente; el dueño (la sesión) serializa el acceso.
type Cart struct {
	lines []Line
}

// New crea un carrinho vacío.
func New() *Cart { return &Cart{} }

// Add agrega una unidad del producto. Si ya existe la línea incrementa su cantidad;
// si no, agrega una línea nueva con cantidad 1. Un producto sin id se ignora.
func (c *Cart) Add(p entity.Product) {
	if p.ID == 0 {
		return
	}
	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// UpdateQuantity fija la cantidad absoluta de la línea. quantity <= 0 elimina la línea.
// Un id que no está en el carrinho es no-op.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

// Total suma de precio × cantidad con el precio de la foto. Se recalcula siempre.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear vacía el carrinho. Solo tras una venta confirmada por el backend.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line devuelve la línea del producto, si existe.
func (c *Cart) Line(productID uint) (Line, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Len número de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Items payload de líneas para POST /vendas.
func (c *Cart) Items() []entity.OrderLine {
	items := make([]entity.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, entity.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return items
}

func (c *Cart) indexOf(productID uint) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
