package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	transferUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/transfer"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type TransferHandler struct {
	transferUseCase *transferUC.TransferUseCase
	logger          logger.Logger
}

func NewTransferHandler(uc *transferUC.TransferUseCase, log logger.Logger) *TransferHandler {
	return &TransferHandler{transferUseCase: uc, logger: log}
}

// Export downloads the document as myDynamicProfile.json.
func (h *TransferHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	output, err := h.transferUseCase.ExecuteExport(c.Request.Context(), &buf)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

// Import accepts the file either as multipart field "file" or as the raw
// request body.
func (h *TransferHandler) Import(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.Error(apperror.NewInvalidInput("'file' is required", err))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.Error(apperror.NewInternal("failed to open file", err))
			return
		}
		defer file.Close()
		src = file
	}

	output, err := h.transferUseCase.ExecuteImport(c.Request.Context(), src)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Message: output.Message, Profile: output.Profile})
}
