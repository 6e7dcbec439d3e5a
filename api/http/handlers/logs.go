package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cyberbuddy/backend/api/http/presenter"
	"github.com/cyberbuddy/backend/pkg/logs"
)

type LogsHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	log      zerolog.Logger
}

func NewLogsHandler(maxBytes int64, log zerolog.Logger) *LogsHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &LogsHandler{maxBytes: maxBytes, log: log.With().Str("component", "logs").Logger()}
}

// Analyze classifies an uploaded log by keyword.
// @Summary     Classify an uploaded log
// @Description Plain text of any extension, or .pdf/.docx exports. First match wins: unauthorized, error, success.
// @Tags        logs
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Log file"
// @Success     200 {object} map[string]string
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /logs/ [post]
func (h *LogsHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := logs.ExtractText(fh.Filename, data)
	if err != nil {
		h.log.Warn().Err(err).Str("filename", fh.Filename).Msg("log upload rejected")
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read log: %v", err))
	}
	analysis := logs.Classify(text)
	h.log.Info().Str("filename", fh.Filename).Int("bytes", len(data)).Str("analysis", analysis).Msg("log analyzed")
	return presenter.JSON(c, http.StatusOK, fiber.Map{"analysis": analysis})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
