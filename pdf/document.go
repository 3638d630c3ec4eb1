package pdf

import (
	"github.com/flanksource/commons/logger"

	"github.com/flanksource/specsheet/api"
	"github.com/flanksource/specsheet/fetch"
)

// Inputs is the fully-resolved material for one specification sheet. Assets
// are nil when their fetch failed; the composer degrades them to
// placeholders or omitted blocks.
type Inputs struct {
	Product  api.Product
	Company  api.Company
	Siblings []api.CollectionItem
	Hero     *fetch.Asset
	Logo     *fetch.Asset
	QR       *fetch.Asset
	Cards    map[string]*fetch.Asset // sibling card images by product code
}

// Document is the finalized artifact.
type Document struct {
	Name  string
	Pages int
	Data  []byte
}

// Filename derives the deterministic artifact name from the product code.
func Filename(code string) string {
	if code == "" {
		return "spec-sheet.pdf"
	}
	return code + ".pdf"
}

// Compose renders the title page followed by the collection gallery pages
// and finalizes the document. A composition error yields no artifact at all.
func Compose(in Inputs) (*Document, error) {
	c := NewCanvas(DefaultTheme())
	p := &composer{c: c, t: c.theme, in: in}

	p.titlePage()
	p.galleryPages()

	data, err := c.Output()
	if err != nil {
		return nil, err
	}

	doc := &Document{Name: Filename(in.Product.Code), Pages: c.Pages(), Data: data}
	logger.Debugf("composed %s: %d page(s), %d bytes", doc.Name, doc.Pages, len(doc.Data))
	return doc, nil
}
