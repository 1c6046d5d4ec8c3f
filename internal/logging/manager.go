package logging

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// Компоненты сборщика, у каждого свой логгер и свой файл
const (
	ComponentCLI       = "addon-builder"
	ComponentGenerator = "generator"
	ComponentStore     = "store"
)

// LoggerManager выдаёт по одному логгеру на компонент и держит общие
// пороги вывода: логгеры, созданные после SetDefaultLevels, сразу получают
// новые пороги.
type LoggerManager struct {
	mu           sync.Mutex
	loggers      map[string]*Logger
	consoleLevel LogLevel
	fileLevel    LogLevel
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager()
	})
	return globalManager
}

// NewLoggerManager создаёт пустой менеджер с порогами INFO/DEBUG
func NewLoggerManager() *LoggerManager {
	return &LoggerManager{
		loggers:      make(map[string]*Logger),
		consoleLevel: INFO,
		fileLevel:    DEBUG,
	}
}

// GetLogger возвращает логгер компонента, создавая его при первом вызове
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if logger, ok := lm.loggers[component]; ok {
		return logger, nil
	}

	logger, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger for %s: %w", component, err)
	}
	logger.SetLevels(lm.consoleLevel, lm.fileLevel)
	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер компонента. Если файл логов создать не
// удалось, возвращается консольный логгер без файла.
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err == nil {
		return logger
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	fallback := NewWriterLogger(component, os.Stdout, lm.consoleLevel)
	fallback.Warn("Файл логов недоступен: %v", err)
	lm.loggers[component] = fallback
	return fallback
}

// SetDefaultLevels меняет пороги всех существующих и будущих логгеров
func (lm *LoggerManager) SetDefaultLevels(consoleLevel, fileLevel LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.consoleLevel = consoleLevel
	lm.fileLevel = fileLevel
	for _, logger := range lm.loggers {
		logger.SetLevels(consoleLevel, fileLevel)
	}
}

// SetLogLevel меняет пороги одного уже созданного логгера
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	logger, ok := lm.loggers[component]
	if !ok {
		return fmt.Errorf("logger for component %s not found", component)
	}
	logger.SetLevels(consoleLevel, fileLevel)
	return nil
}

// ListComponents возвращает отсортированные имена компонентов
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// CloseAll закрывает файлы всех логгеров и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var lastErr error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close logger for %s: %w", component, err)
		}
	}
	lm.loggers = make(map[string]*Logger)
	return lastErr
}

func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetGeneratorLogger() *Logger {
	return GetComponentLogger(ComponentGenerator)
}

func GetStoreLogger() *Logger {
	return GetComponentLogger(ComponentStore)
}
