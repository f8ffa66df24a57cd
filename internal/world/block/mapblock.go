package block

import "fmt"

// MaxDamage верхняя граница повреждения. 0 - целый блок, MaxDamage - разрушен.
const MaxDamage = 100

// MapBlock изменяемое состояние одного размещённого вокселя.
// Тип блока хранится только идентификатором и разрешается через Registry
// в момент использования. Смена типа = новый MapBlock, сеттера ID нет.
// Экземпляр принадлежит одному владельцу (хранилищу вокселей), блокировок нет.
type MapBlock struct {
	id       string
	rotation Rotation
	damage   int
}

// State тройка (идентификатор, ориентация, повреждение) для сохранения.
type State struct {
	ID       string   `json:"id" yaml:"id"`
	Rotation Rotation `json:"rotation" yaml:"rotation"`
	Damage   int      `json:"damage" yaml:"damage"`
}

// NewMapBlock создаёт экземпляр блока с нулевым повреждением.
func NewMapBlock(id string, rotation Rotation) (*MapBlock, error) {
	if err := checkRotation(rotation); err != nil {
		return nil, err
	}
	return &MapBlock{id: id, rotation: rotation}, nil
}

// RestoreMapBlock восстанавливает экземпляр из сохранённой тройки,
// повторно проверяя ориентацию и повреждение.
func RestoreMapBlock(s State) (*MapBlock, error) {
	mb, err := NewMapBlock(s.ID, s.Rotation)
	if err != nil {
		return nil, err
	}
	if err := mb.SetDamage(s.Damage); err != nil {
		return nil, err
	}
	return mb, nil
}

// ID возвращает идентификатор типа блока
func (m *MapBlock) ID() string {
	return m.id
}

// Rotation возвращает ориентацию
func (m *MapBlock) Rotation() Rotation {
	return m.rotation
}

// SetRotation меняет ориентацию. Значение вне домена отклоняется,
// текущее состояние при этом не меняется.
func (m *MapBlock) SetRotation(rotation Rotation) error {
	if err := checkRotation(rotation); err != nil {
		return err
	}
	m.rotation = rotation
	return nil
}

// Damage возвращает текущее повреждение
func (m *MapBlock) Damage() int {
	return m.damage
}

// SetDamage устанавливает повреждение в диапазоне [0, MaxDamage].
func (m *MapBlock) SetDamage(damage int) error {
	if damage < 0 || damage > MaxDamage {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidDamage, damage, MaxDamage)
	}
	m.damage = damage
	return nil
}

// Broken true, если блок получил максимальное повреждение.
func (m *MapBlock) Broken() bool {
	return m.damage >= MaxDamage
}

// State возвращает тройку для сохранения.
func (m *MapBlock) State() State {
	return State{ID: m.id, Rotation: m.rotation, Damage: m.damage}
}
