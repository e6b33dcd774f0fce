package app

import (
	"fmt"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	v1 "jobmatch/internal/delivery/http/routes/v1"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Hub    *ws.Hub
	Logger *zap.Logger
}

// Bootstrap assembles the whole server: infrastructure container, websocket
// hub, middleware chain, and the route registry. The returned cleanup closes
// everything the container opened.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.Name})
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	registry := routes.NewRegistry(v1.Deps{
		Config: cfg,
		DB:     c.DB,
		Logger: logger,
		Cache:  c.Cache,
		Hub:    hub,
	})
	registry.Register(f)

	return &App{Fiber: f, Hub: hub, Logger: logger}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
