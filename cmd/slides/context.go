package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/slides/internal/config"
	"github.com/slides/internal/db"
	"github.com/slides/internal/service"
)

type commandContext struct {
	configFlag *string
	dirFlag    *string

	configOnce sync.Once
	config     config.AppConfig
	configErr  error
}

func newCommandContext(configFlag, dirFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dirFlag:    dirFlag,
	}
}

func (c *commandContext) ensureConfig() (config.AppConfig, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			path = strings.TrimSpace(os.Getenv("SLIDES_CONFIG"))
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.dirFlag != nil {
			if dir := strings.TrimSpace(*c.dirFlag); dir != "" {
				cfg.SlideshowsDir = dir
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func (c *commandContext) slideshowService() (*service.SlideshowService, *db.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := db.Open(cfg.SlideshowsDir, c.logger())
	if err != nil {
		return nil, nil, err
	}
	return service.NewSlideshowService(store), store, nil
}
