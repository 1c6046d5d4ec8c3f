package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/config"
	"github.com/annel0/addon-builder/internal/diffreport"
	"github.com/annel0/addon-builder/internal/generator"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/annel0/addon-builder/internal/manifest"
	"github.com/annel0/addon-builder/internal/metrics"
	"github.com/annel0/addon-builder/internal/observability"
	"github.com/annel0/addon-builder/internal/packager"
	"github.com/annel0/addon-builder/internal/store"
)

// Options параметры командной строки
type Options struct {
	ConfigPath   string
	OutDir       string
	DryRun       bool
	MCAddonPath  string
	SchemaPath   string
	Enchantments bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to addon YAML config (or ADDON_CONFIG)")
	flag.StringVar(&opts.OutDir, "out", "", "Output directory, overrides output.dir")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Build in memory and print a diff against the output directory")
	flag.StringVar(&opts.MCAddonPath, "mcaddon", "", "Also pack both packs into this .mcaddon archive")
	flag.StringVar(&opts.SchemaPath, "schema", "", "Write the config JSON schema to this path ('-' for stdout) and exit")
	flag.BoolVar(&opts.Enchantments, "enchantments", false, "List known enchantment identifiers and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(ctx context.Context, opts Options, stdout io.Writer) error {
	if opts.SchemaPath != "" {
		return writeSchema(opts.SchemaPath, stdout)
	}
	if opts.Enchantments {
		for _, e := range addon.AllEnchantments() {
			fmt.Fprintln(stdout, e)
		}
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if cfg == nil {
		return errors.New("конфигурация не задана: используйте -config или ADDON_CONFIG")
	}
	if opts.OutDir != "" {
		cfg.Output.Dir = opts.OutDir
	}

	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.GetServiceName(), cfg.Telemetry.Enabled)
	if err != nil {
		return fmt.Errorf("ошибка инициализации телеметрии: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn("Ошибка остановки телеметрии: %v", err)
		}
	}()

	logging.Info("🧱 Сборка аддона %q", cfg.Addon.Name)

	s, closeStore, err := openStore(cfg.Output, opts.DryRun)
	if err != nil {
		return err
	}
	defer closeStore()

	items, blocks, err := cfg.Content.Build()
	if err != nil {
		return fmt.Errorf("ошибка описания содержимого: %w", err)
	}

	builder := manifest.NewBuilder()
	if cfg.Addon.StableUUIDs {
		builder = manifest.NewStableBuilder(cfg.Addon.Name)
	}

	collector := metrics.NewCollector()
	manager, err := generator.New(generator.Options{
		Name:        cfg.Addon.Name,
		Description: cfg.Addon.Description,
		Namespace:   cfg.Addon.Namespace,
		Store:       s,
		Logger:      logging.GetGeneratorLogger(),
		Metrics:     collector,
		Manifests:   builder,
	})
	if err != nil {
		return err
	}
	manager.AddItem(items...)
	manager.AddBlock(blocks...)

	manager.Initialize(ctx)
	report, err := manager.Generate(ctx)
	if err != nil {
		return fmt.Errorf("ошибка генерации: %w", err)
	}
	logging.Info("✅ Готово: предметов=%d блоков=%d рецептов=%d файлов=%d (%s)",
		report.Items, report.Blocks, report.Recipes, report.Files, report.Duration)

	if summary, err := collector.Summary(); err == nil && summary != "" {
		logging.Debug("Метрики: %s", summary)
	}

	if opts.DryRun {
		if err := printDiff(cfg.Output.GetDir(), s, stdout); err != nil {
			return err
		}
	}

	if opts.MCAddonPath != "" {
		if err := writeMCAddon(opts.MCAddonPath, s); err != nil {
			return err
		}
	}
	return nil
}

func setupLogging(lc config.LoggingConfig) error {
	consoleLevel, err := lc.GetConsoleLevel()
	if err != nil {
		return err
	}
	fileLevel, err := lc.GetFileLevel()
	if err != nil {
		return err
	}

	logging.LogDir = lc.Dir
	if err := logging.InitDefaultLogger(logging.ComponentCLI); err != nil {
		return fmt.Errorf("ошибка инициализации логирования: %w", err)
	}
	logging.Default().SetLevels(consoleLevel, fileLevel)
	logging.GetLoggerManager().SetDefaultLevels(consoleLevel, fileLevel)
	return nil
}

// openStore выбирает хранилище артефактов. В режиме dry-run сборка всегда
// идёт в память, каталог вывода не трогается.
func openStore(oc config.OutputConfig, dryRun bool) (store.Store, func(), error) {
	logger := logging.GetStoreLogger()
	noop := func() {}

	if dryRun {
		logger.Debug("Dry-run: сборка в памяти")
		return store.NewMemoryStore(), noop, nil
	}

	backend, err := oc.GetBackend()
	if err != nil {
		return nil, noop, err
	}

	switch backend {
	case config.BackendMemory:
		logger.Debug("Хранилище: память")
		return store.NewMemoryStore(), noop, nil

	case config.BackendBadger:
		path := oc.GetBadgerPath()
		logger.Info("Хранилище: BadgerDB %s", path)
		bs, err := store.NewBadgerStore(path)
		if err != nil {
			return nil, noop, err
		}
		return bs, func() {
			if err := bs.Close(); err != nil {
				logger.Warn("Ошибка закрытия BadgerDB: %v", err)
			}
		}, nil

	default:
		dir := oc.GetDir()
		logger.Info("Хранилище: каталог %s", dir)
		fst, err := store.NewFileStore(dir)
		if err != nil {
			return nil, noop, err
		}
		return fst, noop, nil
	}
}

// printDiff сравнивает сборку в памяти с содержимым каталога вывода
func printDiff(dir string, built store.Store, stdout io.Writer) error {
	var existing store.Store = store.NewMemoryStore()
	if _, err := os.Stat(dir); err == nil {
		fst, err := store.NewFileStore(dir)
		if err != nil {
			return err
		}
		existing = fst
	}

	report, err := diffreport.Compare(existing, built, 0)
	if err != nil {
		return fmt.Errorf("ошибка сравнения: %w", err)
	}
	if _, err := io.WriteString(stdout, report.Patch()); err != nil {
		return err
	}
	logging.Info("Dry-run %s: %s", dir, report.Summary())
	return nil
}

func writeMCAddon(path string, s store.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания архива: %w", err)
	}
	n, err := packager.WriteMCAddon(s, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	logging.Info("📦 Архив %s: %d файлов", path, n)
	return nil
}

func writeSchema(path string, stdout io.Writer) error {
	data, err := config.MarshalSchema()
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
