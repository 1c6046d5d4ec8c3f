// Package generator реализует проход генерации аддона: инициализацию
// дерева вывода с парой манифестов и последовательную эмиссию всех
// зарегистрированных предметов, затем блоков.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/emit"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/annel0/addon-builder/internal/manifest"
	"github.com/annel0/addon-builder/internal/metrics"
	"github.com/annel0/addon-builder/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/annel0/addon-builder/internal/generator"

// ManifestFile имя файла манифеста в корне каждого пака
const ManifestFile = "manifest.json"

var (
	// ErrNotInitialized Generate вызван до успешного Initialize
	ErrNotInitialized = errors.New("addon manager is not initialized")
	// ErrAlreadyGenerated повторный Generate без повторной инициализации
	ErrAlreadyGenerated = errors.New("addon already generated")
)

// State состояние прохода генерации
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateGenerated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// Options параметры менеджера. Store обязателен, остальное имеет значения
// по умолчанию.
type Options struct {
	Name        string
	Description string
	Namespace   string // пусто => выводится из Name

	Store     store.Store
	Logger    *logging.Logger
	Metrics   *metrics.Collector
	Tracer    trace.Tracer
	Manifests *manifest.Builder
}

// Report итог прохода генерации
type Report struct {
	Items    int
	Blocks   int
	Recipes  int
	Files    int
	Duration time.Duration
}

// Manager собирает аддон из зарегистрированных предметов и блоков
type Manager struct {
	name        string
	description string
	namespace   string
	layout      emit.Layout

	store     store.Store
	emitter   *emit.Emitter
	logger    *logging.Logger
	metrics   *metrics.Collector
	tracer    trace.Tracer
	manifests *manifest.Builder

	state     State
	items     []*addon.Item
	blocks    []*addon.Block
	resource  manifest.Manifest
	behaviour manifest.Manifest
}

// New создаёт менеджер в состоянии Uninitialized
func New(opts Options) (*Manager, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("generator: store is required")
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("generator: addon name is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(tracerName)
	}
	if opts.Manifests == nil {
		opts.Manifests = manifest.NewBuilder()
	}

	namespace := addon.ResolveNamespace(opts.Name, opts.Namespace)
	layout := emit.NewLayout(addon.TechnicalName(opts.Name))

	return &Manager{
		name:        opts.Name,
		description: opts.Description,
		namespace:   namespace,
		layout:      layout,
		store:       opts.Store,
		emitter:     emit.NewEmitter(opts.Store, layout, namespace, opts.Logger, opts.Metrics),
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		tracer:      opts.Tracer,
		manifests:   opts.Manifests,
	}, nil
}

func (m *Manager) Namespace() string      { return m.namespace }
func (m *Manager) Layout() emit.Layout    { return m.layout }
func (m *Manager) State() State           { return m.state }
func (m *Manager) Emitter() *emit.Emitter { return m.emitter }

// Manifests возвращает пару манифестов, построенную при инициализации
func (m *Manager) Manifests() (resource, behaviour manifest.Manifest) {
	return m.resource, m.behaviour
}

// AddItem регистрирует предметы в порядке вызова. Проверка выполняется
// при генерации.
func (m *Manager) AddItem(items ...*addon.Item) {
	m.items = append(m.items, items...)
}

// AddBlock регистрирует блоки в порядке вызова
func (m *Manager) AddBlock(blocks ...*addon.Block) {
	m.blocks = append(m.blocks, blocks...)
}

// Items возвращает зарегистрированные предметы
func (m *Manager) Items() []*addon.Item {
	return append([]*addon.Item(nil), m.items...)
}

// Blocks возвращает зарегистрированные блоки
func (m *Manager) Blocks() []*addon.Block {
	return append([]*addon.Block(nil), m.blocks...)
}

// Initialize стирает дерево вывода, записывает пару манифестов и создаёт
// каталоги паков. Ошибка не возвращается: она логируется как
// предупреждение, а менеджер остаётся в состоянии Uninitialized.
func (m *Manager) Initialize(ctx context.Context) {
	_, span := m.tracer.Start(ctx, "addon.initialize",
		trace.WithAttributes(attribute.String("addon.namespace", m.namespace)))
	defer span.End()

	if err := m.initialize(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logger.Warn("Не удалось инициализировать AddonManager: %v", err)
		return
	}
	m.logger.Debug("Инициализация завершена")
}

func (m *Manager) initialize() error {
	m.state = StateUninitialized
	if err := m.store.Reset(); err != nil {
		return err
	}

	m.logger.Debug("Настройка манифеста ресурсов")
	resource := m.manifests.BuildResource(m.name, m.description)
	if err := m.writeManifest(m.layout.ResourceRoot, resource); err != nil {
		return err
	}

	m.logger.Debug("Настройка манифеста поведения")
	behaviour, err := m.manifests.BuildBehaviour(m.name, m.description, resource)
	if err != nil {
		return err
	}
	if err := m.writeManifest(m.layout.BehaviourRoot, behaviour); err != nil {
		return err
	}

	for _, dir := range m.layout.Skeleton() {
		if err := m.store.Ensure(dir, true); err != nil {
			return err
		}
	}

	m.resource = resource
	m.behaviour = behaviour
	m.state = StateInitialized
	return nil
}

func (m *Manager) writeManifest(root string, doc manifest.Manifest) error {
	p := store.Join(root, ManifestFile)
	if err := m.store.Ensure(p, false); err != nil {
		return err
	}
	if err := store.WriteJSON(m.store, p, doc); err != nil {
		return err
	}
	m.metrics.FileWritten("manifest")
	return nil
}

// Generate эмитирует все предметы, затем все блоки в порядке регистрации.
// Первая ошибка прерывает проход; уже записанные файлы остаются.
func (m *Manager) Generate(ctx context.Context) (Report, error) {
	switch m.state {
	case StateUninitialized:
		return Report{}, ErrNotInitialized
	case StateGenerated:
		return Report{}, ErrAlreadyGenerated
	}

	ctx, span := m.tracer.Start(ctx, "addon.generate", trace.WithAttributes(
		attribute.Int("addon.items", len(m.items)),
		attribute.Int("addon.blocks", len(m.blocks)),
	))
	defer span.End()

	start := time.Now()
	report, err := m.generate(ctx)
	report.Duration = time.Since(start)
	m.metrics.ObserveGenerate(report.Duration)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	files, err := m.store.List()
	if err != nil {
		return report, err
	}
	report.Files = len(files)

	m.state = StateGenerated
	m.logger.Info("Аддон %s сгенерирован: предметов=%d блоков=%d рецептов=%d файлов=%d за %s",
		m.namespace, report.Items, report.Blocks, report.Recipes, report.Files, report.Duration)
	return report, nil
}

func (m *Manager) generate(ctx context.Context) (Report, error) {
	var report Report

	for _, item := range m.items {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := m.emitEntity(ctx, "item", entityID(item), func() error { return m.emitter.EmitItem(item) }); err != nil {
			return report, err
		}
		report.Items++
		if item.Recipe != nil {
			report.Recipes++
		}
	}

	for _, block := range m.blocks {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := m.emitEntity(ctx, "block", blockID(block), func() error { return m.emitter.EmitBlock(block) }); err != nil {
			return report, err
		}
		report.Blocks++
		if block.Recipe != nil {
			report.Recipes++
		}
	}

	return report, nil
}

func (m *Manager) emitEntity(ctx context.Context, kind, id string, fn func() error) error {
	_, span := m.tracer.Start(ctx, "addon.emit."+kind, trace.WithAttributes(attribute.String("addon.id", id)))
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s %q: %w", kind, id, err)
	}
	return nil
}

func entityID(item *addon.Item) string {
	if item == nil {
		return "<nil>"
	}
	return item.ID
}

func blockID(block *addon.Block) string {
	if block == nil {
		return "<nil>"
	}
	return block.ID
}
