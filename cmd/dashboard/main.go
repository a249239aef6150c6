package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"trendboard/internal/infrastructure/classifier"
	"trendboard/internal/infrastructure/logger"
	"trendboard/internal/infrastructure/provider"
	"trendboard/internal/usecase"
	"trendboard/internal/web"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Model struct {
		Path string `yaml:"path"`
	} `yaml:"model"`
	Provider struct {
		BaseURL    string `yaml:"base_url"`
		Proxy      string `yaml:"proxy"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"provider"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	// 1. Load Config
	cfg, err := loadConfig("config/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Load Model (fatal if absent: the dashboard is useless without it)
	modelPath := cfg.Model.Path
	if modelPath == "" {
		modelPath = "stock_model.gob"
	}
	model, err := classifier.Load(modelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact", zap.String("path", modelPath), zap.Error(err))
	}
	log.Info("Model loaded", zap.String("path", modelPath), zap.String("currency", model.Currency()))

	// 4. Init Provider
	baseURL := cfg.Provider.BaseURL
	if baseURL == "" {
		baseURL = provider.DefaultBaseURL
	}
	timeout := time.Duration(cfg.Provider.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	yahoo := provider.NewYahooProvider(baseURL, cfg.Provider.Proxy, timeout, log)

	// 5. Init Services
	market := usecase.NewMarketService(yahoo, log)
	predict := usecase.NewPredictService(market, model)

	// 6. Init Web Server
	if err := web.InitTemplates("internal/web/templates"); err != nil {
		log.Fatal("Failed to initialize templates", zap.Error(err))
	}
	port := cfg.Server.Port
	if port == 0 {
		port = 8080 // Default
	}
	server := web.NewServer(port, market, predict, log)

	// 7. Start Server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 8. Wait for Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")
	server.Shutdown(context.Background())
}
