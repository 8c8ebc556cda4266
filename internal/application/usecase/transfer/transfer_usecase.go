// Package transfer exports the profile document to a JSON file and imports
// one back as a full replacement.
package transfer

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	profileuc "github.com/khoahotran/dynamic-profile/internal/application/usecase/profile"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const (
	MsgImported     = "Data imported successfully!"
	MsgImportFailed = "Failed to import data. Please check the file format."

	// MaxImportSize bounds the bytes read from an import file.
	MaxImportSize = 10 << 20
)

type DocumentStore interface {
	Current() *profile.Document
	Replace(doc *profile.Document) (*profile.Document, error)
}

type TransferUseCase struct {
	store  DocumentStore
	logger logger.Logger
}

func NewTransferUseCase(s DocumentStore, log logger.Logger) *TransferUseCase {
	return &TransferUseCase{store: s, logger: log}
}

type ExportOutput struct {
	FileName string
	Size     int
}

// ExecuteExport writes the current document as indented JSON.
func (uc *TransferUseCase) ExecuteExport(ctx context.Context, w io.Writer) (*ExportOutput, error) {
	data, err := profile.EncodeIndent(uc.store.Current())
	if err != nil {
		return nil, apperror.NewInternal("encode profile failed", err)
	}
	n, err := w.Write(data)
	if err != nil {
		return nil, fmt.Errorf("write export failed: %w", err)
	}
	return &ExportOutput{FileName: profile.ExportFileName, Size: n}, nil
}

type ImportOutput struct {
	Profile *profile.Document
	Message string
}

// ExecuteImport replaces the whole document with the file read from r. A file
// that is not a valid profile leaves the document unchanged.
func (uc *TransferUseCase) ExecuteImport(ctx context.Context, r io.Reader) (*ImportOutput, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxImportSize+1))
	if err != nil {
		return nil, apperror.NewInvalidInput(MsgImportFailed, err)
	}
	if len(raw) > MaxImportSize {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("%s The file is larger than %d bytes.", MsgImportFailed, MaxImportSize), nil)
	}

	doc, err := profileuc.ParseDocument(raw)
	if err != nil {
		uc.logger.Warn("Rejected profile import", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil, apperror.NewInvalidInput(MsgImportFailed, err)
	}

	next, err := uc.store.Replace(doc)
	if err != nil {
		uc.logger.Error("Failed to replace profile on import", err)
		return nil, apperror.NewInternal("import failed", err)
	}
	uc.logger.Info("Profile imported", zap.Int("bytes", len(raw)))
	return &ImportOutput{Profile: next, Message: MsgImported}, nil
}
