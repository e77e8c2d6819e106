package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile reads a YAML catalog of the form
//
//	products:
//	  - name: ...
//	    price: 999
//	    category: ...
//	    specs: ...
//
// and validates every product. The file is read once; the returned catalog
// never changes afterwards.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var products []Product
	if err := k.Unmarshal("products", &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	c, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
