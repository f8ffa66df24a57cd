package block

// BlockType неизменяемое описание одного вида блока.
// Поля закрыты: значение создаёт только Registry, дальше оно передаётся копией.
type BlockType struct {
	id          string
	displayName string
	category    Category
}

// Unknown встроенный тип-заглушка, который подставляется потребителям,
// когда идентификатор не удалось разрешить и запасной тип не зарегистрирован.
var Unknown = BlockType{
	id:          "core:null",
	displayName: "Unknown",
	category:    CategorySolid,
}

// ID возвращает идентификатор типа
func (b BlockType) ID() string { return b.id }

// DisplayName возвращает человекочитаемое имя
func (b BlockType) DisplayName() string { return b.displayName }

// Category возвращает категорию
func (b BlockType) Category() Category { return b.category }

// Equal сравнивает типы только по идентификатору.
func (b BlockType) Equal(other BlockType) bool {
	return b.id == other.id
}

// IsZero true для нулевого значения (тип не получен из реестра).
func (b BlockType) IsZero() bool {
	return b.id == ""
}

func (b BlockType) String() string {
	return b.id
}
