package handlers

import (
	"net/http"

	"catalogsheet-backend/dtos"

	"github.com/gin-gonic/gin"
)

// handleWrite appends one submission row to the responses tab. The row
// arrives in the client's fixed column order; the server does not
// deduplicate by SKU.
func (h *SyncHandler) handleWrite(c *gin.Context, env *dtos.Envelope) {
	payload, err := env.ParseWriteRow()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.newClient(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	if err := client.AppendRow(c.Request.Context(), env.Tab(dtos.TabResponses), payload.RowData); err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
