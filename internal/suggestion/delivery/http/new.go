package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/internal/suggestion"
	"task-suggestion/pkg/log"
)

// Handler is the HTTP delivery for the suggestion domain.
type Handler interface {
	Suggest(c *gin.Context)
	Validate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
