package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Product is a single item that can be recommended
type Product struct {
	Name     string  `koanf:"name" json:"name" validate:"notblank"`
	Price    float64 `koanf:"price" json:"price" validate:"gte=0"`
	Category string  `koanf:"category" json:"category" validate:"notblank"`
	Specs    string  `koanf:"specs" json:"specs" validate:"notblank"`
}

// ErrEmptyCatalog is returned when a catalog is built without products
var ErrEmptyCatalog = errors.New("catalog has no products")

var validate = newValidator()

// newValidator adds notblank so whitespace-only fields are rejected
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Catalog is an immutable, ordered product list. It is safe to share
// between goroutines once built.
type Catalog struct {
	products []Product
	listing  string
}

// New validates the products and builds a catalog holding its own copy of them
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product #%d (%q): %w", i+1, p.Name, err)
		}
	}

	owned := make([]Product, len(products))
	copy(owned, products)

	return &Catalog{
		products: owned,
		listing:  Render(owned),
	}, nil
}

// Products returns a copy of the catalog's products in order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Render returns the bullet listing embedded into prompts
func (c *Catalog) Render() string {
	return c.listing
}

// Render formats products as one "• name - $price - category - specs" line each
func Render(products []Product) string {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = fmt.Sprintf("• %s - $%s - %s - %s", p.Name, FormatPrice(p.Price), p.Category, p.Specs)
	}
	return strings.Join(lines, "\n")
}

// FormatPrice prints whole prices without decimals (999) and keeps the
// shortest exact form otherwise (12.5)
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
