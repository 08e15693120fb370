package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/slides/internal/config"
	"github.com/slides/internal/router"
)

func main() {
	// 读取配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("starting server", "addr", cfg.ListenAddr, "dir", cfg.SlideshowsDir, "config", cfg.Source())
	if !cfg.AuthEnabled() {
		logger.Warn("no admin password configured, authoring is open to everyone")
	}

	// 设置并运行 Gin 服务器
	r, err := router.SetupRouter(cfg, logger)
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
