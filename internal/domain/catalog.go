package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProductType - индекс товара в каталоге. Нулевое значение означает "нет товара".
type ProductType uint8

const (
	ProductNone ProductType = iota
	ProductBanana
	ProductCorn
	ProductMango
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Product - описание одного товара
type Product struct {
	Code             string `yaml:"code"`
	Name             string `yaml:"name"`
	BuyPrice         int    `yaml:"buy"`
	SellPrice        int    `yaml:"sell"`
	WaterRequirement int    `yaml:"water"`
}

// Symbol возвращает односимвольный код для отрисовки сетки
func (p Product) Symbol() byte {
	if p.Code == "" {
		return ' '
	}
	return p.Code[0]
}

// Catalog - неизменяемая таблица товаров.
// Индекс 0 всегда занят пустым товаром ProductNone.
type Catalog struct {
	products []Product
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

var noneProduct = Product{Code: " ", Name: "None"}

// LoadCatalog разбирает YAML с описанием товаров
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, errors.New("catalog has no products")
	}

	seen := make(map[string]bool, len(f.Products))
	products := make([]Product, 0, len(f.Products)+1)
	products = append(products, noneProduct)

	for i, p := range f.Products {
		p.Code = strings.TrimSpace(p.Code)
		if len(p.Code) != 1 {
			return nil, fmt.Errorf("product %d: code must be a single character, got %q", i, p.Code)
		}
		if seen[p.Code] {
			return nil, fmt.Errorf("product %d: duplicate code %q", i, p.Code)
		}
		if p.BuyPrice < 0 || p.SellPrice < 0 {
			return nil, fmt.Errorf("product %q: prices must not be negative", p.Code)
		}
		if p.WaterRequirement <= 0 {
			return nil, fmt.Errorf("product %q: water requirement must be positive", p.Code)
		}
		seen[p.Code] = true
		products = append(products, p)
	}

	return &Catalog{products: products}, nil
}

// DefaultCatalog возвращает встроенный каталог (банан, кукуруза, манго)
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultCatalogYAML)
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return c
}

// Size - количество записей, включая ProductNone
func (c *Catalog) Size() int {
	return len(c.products)
}

// Get возвращает товар по типу. Выход за границы заворачивается по модулю.
func (c *Catalog) Get(t ProductType) Product {
	return c.products[int(t)%len(c.products)]
}

// Types возвращает все настоящие товары (без ProductNone) в порядке каталога
func (c *Catalog) Types() []ProductType {
	types := make([]ProductType, 0, len(c.products)-1)
	for i := 1; i < len(c.products); i++ {
		types = append(types, ProductType(i))
	}
	return types
}

// Valid - true, если тип соответствует настоящему товару
func (c *Catalog) Valid(t ProductType) bool {
	return t != ProductNone && int(t) < len(c.products)
}
