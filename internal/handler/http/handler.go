// Package http implements the HTTP transport layer of the application:
// middleware, page and JSON handlers, and the HTML renderer. Session
// handling, logging and tracing concerns are all applied at this layer
// before requests reach the service layer.
package http

import (
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/service"
)

type Handler struct {
	services *service.Services
	renderer *Renderer

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *Renderer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: renderer,
		logger:   logger,
	}
}
