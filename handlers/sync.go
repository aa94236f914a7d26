package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"catalogsheet-backend/config"
	"catalogsheet-backend/dtos"
	"catalogsheet-backend/sheets"

	"github.com/gin-gonic/gin"
)

// SyncHandler serves the action-tagged sheet protocol. It is stateless:
// every request re-derives its access token and client, and nothing is
// cached between invocations.
type SyncHandler struct {
	Cfg *config.Config
}

func (h *SyncHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	env, err := dtos.ParseRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch env.Action {
	case dtos.ActionRead:
		h.handleRead(c, env)
	case dtos.ActionWrite:
		h.handleWrite(c, env)
	case dtos.ActionWriteCategories:
		h.handleWriteCategories(c, env)
	case dtos.ActionWriteBrands:
		h.handleWriteBrands(c, env)
	case dtos.ActionWriteLegal:
		h.handleWriteLegal(c, env)
	}
}

var errNotConfigured = errors.New("sheet credentials are not configured")

// newClient obtains a fresh bearer token and range client for this request.
func (h *SyncHandler) newClient(ctx context.Context) (*sheets.Client, error) {
	if !h.Cfg.HasCredentials() {
		return nil, errNotConfigured
	}

	key, err := sheets.ParseServiceAccountKey(h.Cfg.ServiceAccountJSON)
	if err != nil {
		return nil, err
	}

	token, err := sheets.AccessToken(ctx, key, h.Cfg.TokenURL)
	if err != nil {
		return nil, err
	}

	return sheets.NewClient(h.Cfg.SpreadsheetID, token, h.Cfg.SheetsBaseURL), nil
}

// upstreamError answers a failed Sheets or OAuth call: the provider's error
// text is surfaced for operators and useDefaults lets the client keep
// rendering from static data.
func upstreamError(c *gin.Context, err error) {
	log.Printf("sheet sync failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":       err.Error(),
		"useDefaults": true,
	})
}
