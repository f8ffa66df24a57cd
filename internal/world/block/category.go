package block

import (
	"fmt"
	"strings"
)

// Category грубая классификация типа блока. Реестр её не интерпретирует,
// она нужна рендеру и физике.
type Category uint8

const (
	CategorySolid Category = iota
	CategoryLiquid
	CategoryGas
	CategoryTransparent

	categoryCount
)

var categoryNames = [...]string{
	CategorySolid:       "SOLID",
	CategoryLiquid:      "LIQUID",
	CategoryGas:         "GAS",
	CategoryTransparent: "TRANSPARENT",
}

// String возвращает имя категории
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Valid сообщает, входит ли значение в перечисление.
func (c Category) Valid() bool {
	return c < categoryCount
}

// ParseCategory принимает имя категории без учёта регистра.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
