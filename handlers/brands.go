package handlers

import (
	"fmt"
	"net/http"

	"catalogsheet-backend/dtos"

	"github.com/gin-gonic/gin"
)

// handleWriteBrands replaces the brands tab over its three columns, same
// clear-then-write pattern (and same non-atomic window) as the category
// replace. Duplicate brands are a client concern.
func (h *SyncHandler) handleWriteBrands(c *gin.Context, env *dtos.Envelope) {
	payload, err := env.ParseWriteBrands()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.newClient(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	tab := env.Tab(dtos.TabBrands)
	if err := client.ClearRange(c.Request.Context(), tab+"!A2:C"); err != nil {
		upstreamError(c, err)
		return
	}

	if len(payload.Brands) > 0 {
		rows := make([][]string, len(payload.Brands))
		for i, b := range payload.Brands {
			rows[i] = []string{b.Brand, b.BrandName, b.Website}
		}
		if err := client.UpdateRange(c.Request.Context(), tab+"!A2", rows); err != nil {
			upstreamError(c, fmt.Errorf("brands tab was cleared but rewriting it failed, tab is left empty: %w", err))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
