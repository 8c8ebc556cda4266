package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/dynamic-profile/internal/application/usecase/aicontent"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// AIHandler exposes the content bridge. Generation failures are not HTTP
// errors: the response reports ok=false and the alerts that explain it.
type AIHandler struct {
	bridge *aicontent.Bridge
	store  DocumentReader
	logger logger.Logger
}

func NewAIHandler(bridge *aicontent.Bridge, s DocumentReader, log logger.Logger) *AIHandler {
	return &AIHandler{bridge: bridge, store: s, logger: log}
}

func (h *AIHandler) reply(c *gin.Context, msgs *messages, ok bool) {
	resp := msgs.response(ok)
	if ok {
		resp.Profile = h.store.Current()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) GenerateText(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for text generation", err))
		return
	}
	msgs := newMessages()
	text, ok := h.bridge.GenerateText(c.Request.Context(), req.Prompt, msgs)
	resp := msgs.response(ok)
	resp.Text = text
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) GenerateBio(c *gin.Context) {
	msgs := newMessages()
	ok := h.bridge.GenerateBio(c.Request.Context(), msgs)
	h.reply(c, msgs, ok)
}

func (h *AIHandler) DraftExperienceDescription(c *gin.Context) {
	msgs := newMessages()
	ok := h.bridge.DraftExperienceDescription(c.Request.Context(), c.Param("id"), msgs)
	h.reply(c, msgs, ok)
}

func (h *AIHandler) DraftProjectDescription(c *gin.Context) {
	msgs := newMessages()
	ok := h.bridge.DraftProjectDescription(c.Request.Context(), c.Param("id"), msgs)
	h.reply(c, msgs, ok)
}

func (h *AIHandler) SuggestTags(c *gin.Context) {
	msgs := newMessages()
	ok := h.bridge.SuggestTags(c.Request.Context(), c.Param("id"), msgs)
	h.reply(c, msgs, ok)
}

func (h *AIHandler) SuggestSkills(c *gin.Context) {
	category := profile.SkillCategory(c.Param("category"))
	if !category.Valid() {
		c.Error(apperror.NewInvalidInput("unknown skill category "+string(category), nil))
		return
	}
	msgs := newMessages()
	ok := h.bridge.SuggestSkills(c.Request.Context(), category, msgs)
	h.reply(c, msgs, ok)
}

// GenerateWholeProfile runs the profile wizard. The overwrite warning is
// returned with every response.
func (h *AIHandler) GenerateWholeProfile(c *gin.Context) {
	var req WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile generation", err))
		return
	}
	msgs := newMessages()
	doc, ok := h.bridge.GenerateWholeProfile(c.Request.Context(), req.Description, msgs)
	resp := msgs.response(ok)
	resp.Warning = aicontent.MsgOverwrite
	resp.Profile = doc
	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) GenerateImages(c *gin.Context) {
	msgs := newMessages()
	ok := h.bridge.GenerateImages(c.Request.Context(), msgs)
	h.reply(c, msgs, ok)
}
