package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/pheonix/internal/app"
	"github.com/annel0/pheonix/internal/config"
	"github.com/annel0/pheonix/internal/logging"
	"github.com/annel0/pheonix/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или PHEONIX_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logOpts, err := cfg.Logging.LoggerOptions()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}

	// Логгеры создаются здесь и закрываются при выходе из main
	logs := logging.NewManager(logOpts)
	defer logs.CloseAll()

	serverLog := logs.MustGetLogger("server")
	serverLog.Info("🎮 Запуск Pheonix server...")

	// === КАТАЛОГ БЛОКОВ ===
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry := block.NewRegistry(
		block.WithLogger(logs.MustGetLogger("blocks")),
		block.WithMetrics(block.NewMetrics(promReg)),
		block.WithFallbackID(cfg.Blocks.FallbackID),
	)

	// Без базового каталога остальные подсистемы работать не могут
	if err := app.RegisterBuiltins(registry, serverLog); err != nil {
		fatal(logs, serverLog, "❌ Базовый каталог блоков не построен: %v", err)
	}
	if !registry.Has(registry.FallbackID()) {
		serverLog.Warn("Запасной тип %q не зарегистрирован, будет использован %s", registry.FallbackID(), block.Unknown.ID())
	}
	if err := checkCatalog(registry, serverLog); err != nil {
		fatal(logs, serverLog, "❌ Проверка каталога не прошла: %v", err)
	}

	// === МЕТРИКИ ===
	metricsAddr := fmt.Sprintf(":%d", cfg.Server.GetMetricsPort())
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{Addr: metricsAddr, Handler: mux}

	go func() {
		serverLog.Info("📈 Prometheus /metrics доступен по адресу %s", metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLog.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()

	serverLog.Info("✅ Сервер запущен")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	serverLog.Info("📡 Получен сигнал %v, завершение работы...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(ctx); err != nil {
		serverLog.Error("❌ Ошибка остановки HTTP сервера метрик: %v", err)
	}

	serverLog.Info("👋 Сервер успешно остановлен")
}

// fatal пишет ошибку, закрывает логи и завершает процесс (defer в main не сработает).
func fatal(logs *logging.Manager, logger *logging.Logger, format string, args ...interface{}) {
	logger.Error(format, args...)
	logs.CloseAll()
	os.Exit(1)
}

// checkCatalog проходит путь потребителя: экземпляр блока хранит только
// идентификатор, тип получается через реестр.
func checkCatalog(registry *block.Registry, logger *logging.Logger) error {
	mb, err := block.NewMapBlock("core:dirt", 0)
	if err != nil {
		return err
	}
	bt, err := registry.GetBlockByID(mb.ID())
	if err != nil {
		return err
	}
	logger.Info("MapBlock %s -> %q (%s)", mb.ID(), bt.DisplayName(), bt.Category())
	return nil
}
