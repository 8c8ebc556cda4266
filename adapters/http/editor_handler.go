package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/editor"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// DocumentReader returns the committed document for responses.
type DocumentReader interface {
	Current() *profile.Document
}

type EditorHandler struct {
	editors *editor.Editors
	store   DocumentReader
	logger  logger.Logger
}

func NewEditorHandler(editors *editor.Editors, s DocumentReader, log logger.Logger) *EditorHandler {
	return &EditorHandler{editors: editors, store: s, logger: log}
}

// listResolver picks the editor a request addresses.
type listResolver func(c *gin.Context) (editor.List, error)

func (h *EditorHandler) recordList(c *gin.Context) (editor.List, error) {
	kind := c.Param("kind")
	l, ok := h.editors.List(kind)
	if !ok {
		return nil, apperror.NewNotFound("list", kind)
	}
	return l, nil
}

func (h *EditorHandler) skillList(c *gin.Context) (editor.List, error) {
	return h.editors.Skills.Category(profile.SkillCategory(c.Param("category")))
}

func (h *EditorHandler) respond(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"profile": h.store.Current()}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func (h *EditorHandler) add(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		id, err := l.Add()
		if err != nil {
			c.Error(err)
			return
		}
		h.respond(c, http.StatusCreated, gin.H{"id": id})
	}
}

func (h *EditorHandler) update(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		index, err := pathIndex(c, "index")
		if err != nil {
			c.Error(err)
			return
		}
		var req FieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("invalid JSON body for field update", err))
			return
		}
		if err := l.Update(index, req.Field, req.Value); err != nil {
			c.Error(err)
			return
		}
		h.respond(c, http.StatusOK, nil)
	}
}

// remove deletes a record. Without confirm=true nothing changes and the
// response carries the confirmation prompt.
func (h *EditorHandler) remove(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		index, err := pathIndex(c, "index")
		if err != nil {
			c.Error(err)
			return
		}
		confirm := newQueryConfirmer(c)
		removed, err := l.Remove(c.Request.Context(), index, confirm)
		if err != nil {
			c.Error(err)
			return
		}
		if !removed {
			c.Error(apperror.NewCancelled(confirm.prompt))
			return
		}
		h.logger.Info("Record removed", zap.String("list", l.Kind()), zap.Int("index", index))
		h.respond(c, http.StatusOK, nil)
	}
}

func (h *EditorHandler) reorder(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		var req ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("'from' and 'to' are required", err))
			return
		}
		if err := l.Reorder(*req.From, *req.To); err != nil {
			c.Error(err)
			return
		}
		h.respond(c, http.StatusOK, nil)
	}
}

func (h *EditorHandler) validate(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		var req ValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("invalid JSON body for validation", err))
			return
		}
		msg := l.Validate(req.ID, req.Field, req.Value)
		c.JSON(http.StatusOK, ValidateResponse{Message: msg, Errors: l.Errors(req.ID)})
	}
}

func (h *EditorHandler) listErrors(resolve listResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := resolve(c)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"errors": l.Errors(c.Param("id"))})
	}
}

func (h *EditorHandler) SetPersonalField(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for personal info", err))
		return
	}
	if err := h.editors.Personal.Set(req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	h.respond(c, http.StatusOK, nil)
}

func (h *EditorHandler) ValidatePersonalField(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for validation", err))
		return
	}
	msg := h.editors.Personal.Validate(req.Field, req.Value)
	c.JSON(http.StatusOK, ValidateResponse{Message: msg, Errors: h.editors.Personal.Errors()})
}

// MergeSettings applies a partial settings object.
func (h *EditorHandler) MergeSettings(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	settings, err := h.editors.Settings.Merge(raw)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *EditorHandler) register(g *gin.RouterGroup, resolve listResolver) {
	g.POST("", h.add(resolve))
	g.PUT("/:index", h.update(resolve))
	g.DELETE("/:index", h.remove(resolve))
	g.POST("/reorder", h.reorder(resolve))
	g.POST("/validate", h.validate(resolve))
	g.GET("/errors/:id", h.listErrors(resolve))
}
