package block

import "fmt"

// Facing направление, в которое смотрит верх модели блока.
type Facing uint8

const (
	FacingUp Facing = iota
	FacingDown
	FacingNorth
	FacingSouth
	FacingEast
	FacingWest

	FacingCount = 6
)

// SpinCount число поворотов на 90° вокруг оси Facing.
const SpinCount = 4

// RotationCount размер домена ориентаций: 6 направлений × 4 поворота.
const RotationCount = FacingCount * SpinCount

// Rotation дискретная ориентация блока в диапазоне [0, RotationCount).
// Кодируется как facing*SpinCount + spin.
type Rotation int

// NewRotation собирает ориентацию из направления и поворота.
func NewRotation(facing Facing, spin int) (Rotation, error) {
	if facing >= FacingCount || spin < 0 || spin >= SpinCount {
		return 0, fmt.Errorf("%w: facing=%d spin=%d", ErrInvalidOrientation, facing, spin)
	}
	return Rotation(int(facing)*SpinCount + spin), nil
}

// Valid проверяет принадлежность домену ориентаций.
func (r Rotation) Valid() bool {
	return r >= 0 && r < RotationCount
}

// Facing возвращает направление
func (r Rotation) Facing() Facing {
	return Facing(int(r) / SpinCount)
}

// Spin возвращает поворот вокруг оси направления (0..3)
func (r Rotation) Spin() int {
	return int(r) % SpinCount
}

func checkRotation(r Rotation) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOrientation, int(r), RotationCount)
	}
	return nil
}
