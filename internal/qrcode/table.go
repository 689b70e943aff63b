package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// TableGenerator renders the QR code guests scan to reach a table's page.
type TableGenerator struct {
	BaseURL string
	Size    int
}

func NewTableGenerator(baseURL string) *TableGenerator {
	return &TableGenerator{BaseURL: strings.TrimRight(baseURL, "/"), Size: DefaultSize}
}

func (g *TableGenerator) TableURL(tableID uint) string {
	return fmt.Sprintf("%s/tables/%d", g.BaseURL, tableID)
}

func (g *TableGenerator) Generate(tableID uint) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(g.TableURL(tableID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode table %d: %w", tableID, err)
	}
	return png, nil
}
