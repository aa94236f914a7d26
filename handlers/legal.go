package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"catalogsheet-backend/dtos"
	"catalogsheet-backend/sheets"

	"github.com/gin-gonic/gin"
)

// handleWriteLegal upserts one allowed value onto a property's row in the
// LEGAL tab:
//
//   - no row matches the property name: append a new [name, value] row
//   - the value already sits in the matching row: no-op (idempotent)
//   - otherwise: write the value into the row's next empty column in place
//
// The read-modify-write is uncoordinated; two concurrent upserts for the
// same property can pick the same column and clobber each other. Known
// race, inherited from the contract this proxy implements.
func (h *SyncHandler) handleWriteLegal(c *gin.Context, env *dtos.Envelope) {
	payload, err := env.ParseWriteLegal()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.newClient(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	ctx := c.Request.Context()
	tab := env.Tab(dtos.TabLegal)
	rows, err := client.GetValues(ctx, tab+"!A1:ZZ")
	if err != nil {
		upstreamError(c, err)
		return
	}

	name := strings.TrimSpace(payload.PropertyName)
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) != name {
			continue
		}

		for _, cell := range row[1:] {
			if strings.TrimSpace(cell) == strings.TrimSpace(payload.Value) {
				c.JSON(http.StatusOK, gin.H{"success": true})
				return
			}
		}

		column := len(row)
		if column < 1 {
			column = 1
		}
		cell := fmt.Sprintf("%s!%s%d", tab, sheets.ColumnLetter(column), i+1)
		if err := client.UpdateRange(ctx, cell, [][]string{{payload.Value}}); err != nil {
			upstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := client.AppendRow(ctx, tab, []string{payload.PropertyName, payload.Value}); err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
