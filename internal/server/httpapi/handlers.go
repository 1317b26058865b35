package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hrconsole/internal/common"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/dmitrijs2005/hrconsole/internal/server/records"
	"github.com/gin-gonic/gin"
)

// Records is the record store the handlers serve.
type Records interface {
	List(ctx context.Context, entity string, query url.Values) ([]records.Document, error)
	Get(ctx context.Context, entity, id string) (records.Document, error)
	Create(ctx context.Context, entity string, doc records.Document) (records.Document, error)
	Update(ctx context.Context, entity, id string, patch records.Document) (records.Document, error)
	Delete(ctx context.Context, entity, id string) error
}

// CollectionHandler serves the five routes of one collection.
type CollectionHandler struct {
	entity string
	store  Records
	log    logging.Logger
}

func NewCollectionHandler(entity string, store Records, log logging.Logger) *CollectionHandler {
	return &CollectionHandler{entity: entity, store: store, log: log}
}

func (h *CollectionHandler) Register(r gin.IRouter) {
	g := r.Group("/" + h.entity)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CollectionHandler) List(c *gin.Context) {
	docs, err := h.store.List(c.Request.Context(), h.entity, c.Request.URL.Query())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *CollectionHandler) Get(c *gin.Context) {
	doc, err := h.store.Get(c.Request.Context(), h.entity, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var doc records.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	created, err := h.store.Create(c.Request.Context(), h.entity, doc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CollectionHandler) Update(c *gin.Context) {
	var patch records.Document
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	updated, err := h.store.Update(c.Request.Context(), h.entity, c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), h.entity, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *CollectionHandler) writeError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error(c.Request.Context(), "request failed", "entity", h.entity, "error", err)
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
