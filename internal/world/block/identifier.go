package block

import (
	"fmt"
	"strings"
)

// IdentifierSeparator разделяет пространство имён и имя блока ("core:dirt").
const IdentifierSeparator = ":"

// ParseIdentifier разбирает идентификатор вида "<namespace>:<name>".
// Пространство имён: [a-z0-9_]+, имя: [a-z0-9_./-]+.
func ParseIdentifier(id string) (namespace, name string, err error) {
	namespace, name, ok := strings.Cut(id, IdentifierSeparator)
	if !ok {
		return "", "", fmt.Errorf("%w: %q: missing %q", ErrMalformedIdentifier, id, IdentifierSeparator)
	}
	if namespace == "" || !validChars(namespace, "_") {
		return "", "", fmt.Errorf("%w: %q: bad namespace", ErrMalformedIdentifier, id)
	}
	if name == "" || !validChars(name, "_./-") {
		return "", "", fmt.Errorf("%w: %q: bad name", ErrMalformedIdentifier, id)
	}
	return namespace, name, nil
}

// ValidateIdentifier возвращает ошибку, если идентификатор не соответствует формату.
func ValidateIdentifier(id string) error {
	_, _, err := ParseIdentifier(id)
	return err
}

func validChars(s, extra string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case strings.ContainsRune(extra, r):
		default:
			return false
		}
	}
	return true
}
