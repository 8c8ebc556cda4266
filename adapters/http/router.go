package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type Handlers struct {
	Profile  *ProfileHandler
	Editor   *EditorHandler
	AI       *AIHandler
	Transfer *TransferHandler
}

func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	router.GET("/", h.Profile.Page)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/profile", h.Profile.GetProfile)
		api.PUT("/profile", h.Profile.ReplaceProfile)
		api.PATCH("/profile", h.Profile.PatchProfile)
		api.POST("/onboarding", h.Profile.CompleteOnboarding)
		api.GET("/view", h.Profile.GetView)

		admin := api.Group("/admin")
		{
			h.Editor.register(admin.Group("/lists/:kind"), h.Editor.recordList)
			h.Editor.register(admin.Group("/skills/:category"), h.Editor.skillList)

			admin.PUT("/personal", h.Editor.SetPersonalField)
			admin.POST("/personal/validate", h.Editor.ValidatePersonalField)
			admin.PUT("/settings", h.Editor.MergeSettings)

			ai := admin.Group("/ai")
			{
				ai.POST("/text", h.AI.GenerateText)
				ai.POST("/bio", h.AI.GenerateBio)
				ai.POST("/wizard", h.AI.GenerateWholeProfile)
				ai.POST("/images", h.AI.GenerateImages)
				ai.POST("/experience/:id/description", h.AI.DraftExperienceDescription)
				ai.POST("/projects/:id/description", h.AI.DraftProjectDescription)
				ai.POST("/projects/:id/tags", h.AI.SuggestTags)
				ai.POST("/skills/:category", h.AI.SuggestSkills)
			}

			admin.GET("/export", h.Transfer.Export)
			admin.POST("/import", h.Transfer.Import)
		}
	}
	return router
}
