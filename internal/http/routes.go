package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "todolist.com/todolist/internal/http/middlewares"
)

type Options struct {
	RateLimitPerMinute int
	CORSOrigin         string
	Logger             *zap.Logger
	Metrics            *middleware.Metrics
}

func Register(e *echo.Echo, h *Handler, opts Options) {
	e.Use(echomw.Recover())

	if opts.Logger != nil {
		e.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}
	if opts.CORSOrigin != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{opts.CORSOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			AllowCredentials: true,
		}))
	}

	e.GET("/health", h.Health)

	api := e.Group("/api")
	if opts.RateLimitPerMinute > 0 {
		api.Use(middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))
	}

	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.GET("/tags", h.ListTags)
}
