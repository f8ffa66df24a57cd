package block

import "errors"

// Ошибки реестра и экземпляров блоков. Возвращаются обёрнутыми через
// fmt.Errorf, проверять следует через errors.Is.
var (
	ErrDuplicateIdentifier = errors.New("block: duplicate identifier")
	ErrUnknownIdentifier   = errors.New("block: unknown identifier")
	ErrMalformedIdentifier = errors.New("block: malformed identifier")
	ErrUnknownCategory     = errors.New("block: unknown category")
	ErrInvalidOrientation  = errors.New("block: invalid orientation")
	ErrInvalidDamage       = errors.New("block: invalid damage")
	ErrNumericIDOverflow   = errors.New("block: numeric id space exhausted")
)
