package app

import (
	"fmt"

	"github.com/annel0/pheonix/internal/logging"
	"github.com/annel0/pheonix/internal/world/block"
)

// BlockDef описание встроенного типа блока
type BlockDef struct {
	ID          string
	DisplayName string
	Category    block.Category
}

// BuiltinBlocks базовый каталог движка. Запасной тип идёт первым и
// получает числовой ID 0.
var BuiltinBlocks = []BlockDef{
	{ID: block.DefaultFallbackID, DisplayName: "Null", Category: block.CategorySolid},
	{ID: "core:dirt", DisplayName: "Dirt", Category: block.CategorySolid},
	{ID: "core:cobble", DisplayName: "CobbleStone", Category: block.CategorySolid},
	{ID: "core:stone", DisplayName: "Stone", Category: block.CategorySolid},
	{ID: "core:grass", DisplayName: "Grass", Category: block.CategorySolid},
}

// RegisterBuiltins регистрирует встроенный каталог. Любая ошибка означает,
// что базовый каталог не построен, и вызывающий должен завершить процесс.
func RegisterBuiltins(reg *block.Registry, logger *logging.Logger) error {
	return RegisterAll(reg, BuiltinBlocks, logger)
}

// RegisterAll регистрирует defs по порядку и останавливается на первой ошибке.
func RegisterAll(reg *block.Registry, defs []BlockDef, logger *logging.Logger) error {
	for _, def := range defs {
		if err := reg.Register(def.ID, def.DisplayName, def.Category); err != nil {
			return fmt.Errorf("регистрация %q: %w", def.ID, err)
		}
	}
	logger.Info("Каталог блоков готов: %d типов, digest %s", reg.Len(), reg.Digest())
	return nil
}
