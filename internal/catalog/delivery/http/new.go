package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/internal/catalog"
	"task-suggestion/pkg/log"
)

// Handler is the HTTP delivery for the catalog domain.
type Handler interface {
	Reload(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
