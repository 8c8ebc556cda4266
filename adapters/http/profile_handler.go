package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/dynamic-profile/internal/application/render"
	profileUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/profile"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	c.JSON(http.StatusOK, ProfileResponse{Profile: output.Profile, NewUser: output.NewUser})
}

func (h *ProfileHandler) ReplaceProfile(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}

	output, err := h.profileUseCase.ExecuteReplaceProfile(c.Request.Context(), profileUC.ReplaceProfileInput{Raw: raw})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Profile: output.Profile})
}

func (h *ProfileHandler) PatchProfile(c *gin.Context) {
	var req PatchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile patch", err))
		return
	}

	input := profileUC.PatchProfileInput{Path: req.Path, Value: req.Value}
	output, err := h.profileUseCase.ExecutePatchProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Profile: output.Profile})
}

func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for onboarding", err))
		return
	}

	input := profileUC.OnboardingInput{Name: req.Name, Title: req.Title, UseAI: req.UseAI}
	output, err := h.profileUseCase.ExecuteCompleteOnboarding(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, OnboardingResponse{Profile: output.Profile, OpenWizard: output.OpenWizard})
}

func pageState(c *gin.Context) render.PageState {
	slide, _ := strconv.Atoi(c.Query("slide"))
	return render.PageState{Tab: profile.SectionKey(c.Query("tab")), Slide: slide}
}

// GetView returns the render view model with the navigation state resolved.
func (h *ProfileHandler) GetView(c *gin.Context) {
	view := render.Build(h.profileUseCase.ExecuteGetProfile(c.Request.Context()).Profile)
	state := pageState(c)

	resp := gin.H{"view": view}
	switch view.Layout {
	case profile.LayoutTab:
		resp["activeTab"] = view.ActiveTab(state.Tab)
	case profile.LayoutSlide:
		slide := view.ClampSlide(state.Slide)
		resp["slide"] = slide
		resp["slideKey"] = view.SlideKey(slide)
	}
	c.JSON(http.StatusOK, resp)
}

// Page serves the public profile as HTML.
func (h *ProfileHandler) Page(c *gin.Context) {
	view := render.Build(h.profileUseCase.ExecuteGetProfile(c.Request.Context()).Profile)

	var buf bytes.Buffer
	if err := render.HTML(&buf, view, pageState(c)); err != nil {
		c.Error(apperror.NewInternal("render profile page failed", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
