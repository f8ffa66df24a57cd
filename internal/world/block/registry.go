package block

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/annel0/pheonix/internal/logging"
)

// DefaultFallbackID идентификатор запасного типа по умолчанию.
const DefaultFallbackID = "core:null"

// Resolver минимальный контракт поиска типа, нужный потребителям
// (рендер, игровая логика, загрузка мира).
type Resolver interface {
	GetBlockByID(id string) (BlockType, error)
}

// Registry каталог типов блоков. Только добавление: удаления нет, поэтому
// идентификатор, разрешившийся однажды, разрешается всегда.
// Порядок регистрации сохраняется и задаёт числовые ID.
type Registry struct {
	mu    sync.RWMutex
	types []BlockType
	index map[string]int

	fallbackID string
	logger     *logging.Logger
	metrics    *Metrics
}

// Option настраивает Registry
type Option func(*Registry)

// WithLogger задаёт логгер реестра
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithFallbackID задаёт идентификатор типа, подставляемого в Resolve.
func WithFallbackID(id string) Option {
	return func(r *Registry) { r.fallbackID = id }
}

// NewRegistry создаёт пустой реестр
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		index:      make(map[string]int),
		fallbackID: DefaultFallbackID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register создаёт и сохраняет новый тип блока. Повторная регистрация
// идентификатора - ошибка ErrDuplicateIdentifier, существующая запись не меняется.
func (r *Registry) Register(id, displayName string, category Category) error {
	if err := ValidateIdentifier(id); err != nil {
		r.rejected("malformed", err)
		return err
	}
	if !category.Valid() {
		err := fmt.Errorf("%w: %s for %q", ErrUnknownCategory, category, id)
		r.rejected("category", err)
		return err
	}

	r.mu.Lock()
	if _, exists := r.index[id]; exists {
		r.mu.Unlock()
		err := fmt.Errorf("%w: %q", ErrDuplicateIdentifier, id)
		r.rejected("duplicate", err)
		return err
	}
	if len(r.types) > math.MaxUint16 {
		r.mu.Unlock()
		err := fmt.Errorf("%w: cannot register %q", ErrNumericIDOverflow, id)
		r.rejected("overflow", err)
		return err
	}

	r.index[id] = len(r.types)
	r.types = append(r.types, BlockType{id: id, displayName: displayName, category: category})
	total := len(r.types)
	r.mu.Unlock()

	r.metrics.observeRegistration("ok", total)
	r.logger.Debug("Зарегистрирован блок %s (%q, %s), numeric id %d", id, displayName, category, total-1)
	return nil
}

func (r *Registry) rejected(result string, err error) {
	r.mu.RLock()
	total := len(r.types)
	r.mu.RUnlock()

	r.metrics.observeRegistration(result, total)
	r.logger.Error("Ошибка регистрации блока: %v", err)
}

// GetBlockByID возвращает копию типа блока по идентификатору.
func (r *Registry) GetBlockByID(id string) (BlockType, error) {
	r.mu.RLock()
	i, ok := r.index[id]
	var bt BlockType
	if ok {
		bt = r.types[i]
	}
	r.mu.RUnlock()

	r.metrics.observeLookup(ok)
	if !ok {
		return BlockType{}, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
	}
	return bt, nil
}

// Has проверяет, зарегистрирован ли идентификатор
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok
}

// Len возвращает число зарегистрированных типов
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// All возвращает копию каталога в порядке регистрации.
func (r *Registry) All() []BlockType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]BlockType, len(r.types))
	copy(out, r.types)
	return out
}

// Range обходит каталог в порядке регистрации, пока fn возвращает true.
// Обход идёт по снимку, поэтому fn может обращаться к реестру.
func (r *Registry) Range(fn func(numericID uint16, bt BlockType) bool) {
	for i, bt := range r.All() {
		if !fn(uint16(i), bt) {
			return
		}
	}
}

// NumericID возвращает порядковый номер типа в реестре.
func (r *Registry) NumericID(id string) (uint16, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
	}
	return uint16(i), nil
}

// ByNumericID возвращает тип по порядковому номеру.
func (r *Registry) ByNumericID(n uint16) (BlockType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(n) >= len(r.types) {
		return BlockType{}, fmt.Errorf("%w: numeric id %d", ErrUnknownIdentifier, n)
	}
	return r.types[n], nil
}

// Digest sha256 от упорядоченного списка идентификаторов. Одинаковый
// дайджест означает совпадение числовых ID у двух реестров.
func (r *Registry) Digest() string {
	r.mu.RLock()
	ids := make([]string, len(r.types))
	for i, bt := range r.types {
		ids[i] = bt.id
	}
	r.mu.RUnlock()

	sum := sha256.Sum256([]byte(strings.Join(ids, "\n")))
	return hex.EncodeToString(sum[:])
}

// FallbackID возвращает идентификатор запасного типа
func (r *Registry) FallbackID() string {
	return r.fallbackID
}

// Resolve разрешает идентификатор для потребителя. Если его нет в реестре,
// возвращается запасной тип и false; ошибка не возвращается.
func (r *Registry) Resolve(id string) (BlockType, bool) {
	bt, err := r.GetBlockByID(id)
	if err == nil {
		return bt, true
	}

	r.metrics.observeFallback()
	r.logger.Warn("Неизвестный блок %q, подставлен %s", id, r.fallbackID)

	if fb, err := r.GetBlockByID(r.fallbackID); err == nil {
		return fb, false
	}
	return Unknown, false
}

// ResolveOrFallback разрешает идентификатор через любой Resolver.
// Если идентификатор не разрешился, возвращает тип DefaultFallbackID
// (или Unknown, если нет и его) и false.
func ResolveOrFallback(res Resolver, id string) (BlockType, bool) {
	if reg, ok := res.(*Registry); ok {
		return reg.Resolve(id)
	}

	if bt, err := res.GetBlockByID(id); err == nil {
		return bt, true
	}
	if fb, err := res.GetBlockByID(DefaultFallbackID); err == nil {
		return fb, false
	}
	return Unknown, false
}
