package handlers

import (
	"fmt"
	"net/http"

	"catalogsheet-backend/dtos"

	"github.com/gin-gonic/gin"
)

// handleWriteCategories replaces the categories tab wholesale: clear the
// path column below the header, then write the incoming flat list. Any
// diffing against the previous state is the admin client's concern, not
// enforced here.
//
// The clear and the write are two separate range calls with no transaction
// between them. If the write fails after the clear succeeded, the tab is
// left empty; the error message says so rather than hiding the window.
func (h *SyncHandler) handleWriteCategories(c *gin.Context, env *dtos.Envelope) {
	payload, err := env.ParseWriteCategories()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.newClient(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	tab := env.Tab(dtos.TabCategories)
	if err := client.ClearRange(c.Request.Context(), tab+"!A2:A"); err != nil {
		upstreamError(c, err)
		return
	}

	if len(payload.CategoryPaths) > 0 {
		rows := make([][]string, len(payload.CategoryPaths))
		for i, path := range payload.CategoryPaths {
			rows[i] = []string{path}
		}
		if err := client.UpdateRange(c.Request.Context(), tab+"!A2", rows); err != nil {
			upstreamError(c, fmt.Errorf("categories tab was cleared but rewriting it failed, tab is left empty: %w", err))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
