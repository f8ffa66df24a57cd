package logging

import (
	"fmt"
	"sort"
	"sync"
)

// Manager управляет логгерами отдельных компонентов. Создаётся точкой входа
// приложения и закрывается ею же через CloseAll.
type Manager struct {
	mu      sync.RWMutex
	base    Options
	loggers map[string]*Logger
}

// NewManager создаёт менеджер; base задаёт каталог и уровни для всех компонентов.
func NewManager(base Options) *Manager {
	return &Manager{
		base:    base,
		loggers: make(map[string]*Logger),
	}
}

// GetLogger возвращает логгер для компонента, создавая его при необходимости
func (m *Manager) GetLogger(component string) (*Logger, error) {
	m.mu.RLock()
	if logger, exists := m.loggers[component]; exists {
		m.mu.RUnlock()
		return logger, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Проверяем еще раз на случай race condition
	if logger, exists := m.loggers[component]; exists {
		return logger, nil
	}

	opts := m.base
	opts.Component = component
	logger, err := New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger for %s: %w", component, err)
	}

	m.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер или консольный fallback при ошибке
func (m *Manager) MustGetLogger(component string) *Logger {
	logger, err := m.GetLogger(component)
	if err != nil {
		fallback, _ := New(Options{
			Component:    component,
			ConsoleLevel: m.base.ConsoleLevel,
			Console:      m.base.Console,
		})
		fallback.Warn("файловый лог недоступен: %v", err)
		return fallback
	}
	return logger
}

// CloseAll закрывает все логгеры
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error
	for component, logger := range m.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close logger for %s: %w", component, err)
		}
	}

	m.loggers = make(map[string]*Logger)
	return lastErr
}

// ListComponents возвращает отсортированный список компонентов
func (m *Manager) ListComponents() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	components := make([]string, 0, len(m.loggers))
	for component := range m.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel устанавливает уровень логирования для компонента
func (m *Manager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	m.mu.RLock()
	logger, exists := m.loggers[component]
	m.mu.RUnlock()

	if !exists {
		return fmt.Errorf("logger for component %s not found", component)
	}

	logger.mu.Lock()
	logger.minConsoleLevel = consoleLevel
	logger.minFileLevel = fileLevel
	logger.mu.Unlock()
	return nil
}
