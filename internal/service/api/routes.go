package api

import (
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/discounts"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/recipients"
	"github.com/darkkaiser/discount-bot/internal/service/api/handler/system"
	"github.com/darkkaiser/discount-bot/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers 라우트에 연결되는 핸들러 묶음입니다.
type Handlers struct {
	System     *system.Handler
	Discounts  *discounts.Handler
	Recipients *recipients.Handler
}

// RegisterRoutes API 서비스의 모든 라우트를 등록합니다.
//
//   - 시스템: /health, /version
//   - API 문서: /swagger/*
//   - 도메인: {basePath}/command, /parse, /collections, /discounts, /emails, /status
func RegisterRoutes(e *echo.Echo, basePath string, h Handlers) {
	registerSystemRoutes(e, h.System)
	registerSwaggerRoutes(e)
	registerDomainRoutes(e.Group(basePath), h)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}

func registerDomainRoutes(g *echo.Group, h Handlers) {
	requireJSON := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	g.POST("/command", h.Discounts.CommandHandler, requireJSON)
	g.POST("/parse", h.Discounts.ParseHandler, requireJSON)
	g.GET("/collections", h.Discounts.CollectionsHandler)
	g.GET("/discounts", h.Discounts.DiscountsHandler)

	g.GET("/emails", h.Recipients.ListHandler)
	g.POST("/emails", h.Recipients.AddHandler, requireJSON)
	g.DELETE("/emails/:email", h.Recipients.DeleteHandler)

	g.GET("/status", h.System.StatusHandler)
}
