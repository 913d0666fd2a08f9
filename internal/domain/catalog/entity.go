// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProduct = errors.New("catalog: invalid product")
)

// Product is a catalog item referenced by cart and order line items.
// Identity toward storage is ID; equivalence between two products is the
// business key (article, title, url, price) — see EqualsKey.
type Product struct {
	ID          int64   `json:"id"`
	Article     int     `json:"article"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// NewProduct builds a normalized product.
func NewProduct(article int, title, url string, price float64) (Product, error) {
	p := Product{
		Article: article,
		Title:   strings.TrimSpace(title),
		URL:     strings.TrimSpace(url),
		Price:   price,
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// EqualsKey is the business equality key: article + title + url + price.
func (p Product) EqualsKey() string {
	return fmt.Sprintf("%d%s%s%v", p.Article, p.Title, p.URL, p.Price)
}

func (p Product) validate() error {
	if p.Title == "" {
		return ErrInvalidProduct
	}
	if p.Price < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// SetDescription null-coalesces to the empty string.
func (p *Product) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
}
