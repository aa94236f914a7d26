package handlers

import (
	"net/http"
	"strings"

	"catalogsheet-backend/dtos"
	"catalogsheet-backend/schema"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// handleRead rebuilds the whole catalog view from the sheet. Nothing is
// cached: every read fetches all tabs fresh, in parallel.
//
// An empty or missing categories tab is not an error; the client falls back
// to its static seed data, so the response is {useDefaults:true} both when
// credentials are absent and when the tab holds only its header.
func (h *SyncHandler) handleRead(c *gin.Context, env *dtos.Envelope) {
	if !h.Cfg.HasCredentials() {
		c.JSON(http.StatusOK, gin.H{"useDefaults": true})
		return
	}

	client, err := h.newClient(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	var (
		productRows  [][]string
		categoryRows [][]string
		propertyRows [][]string
		legalRows    [][]string
		brandRows    [][]string
		filterRows   [][]string
		defaultsGrid [][]string
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		productRows, err = client.GetValues(ctx, env.Tab(dtos.TabProductsTodo)+"!A2:D")
		return
	})
	g.Go(func() (err error) {
		categoryRows, err = client.GetValues(ctx, env.Tab(dtos.TabCategories)+"!A2:A")
		return
	})
	g.Go(func() (err error) {
		propertyRows, err = client.GetValues(ctx, env.Tab(dtos.TabProperties)+"!A2:D")
		return
	})
	g.Go(func() (err error) {
		legalRows, err = client.GetValues(ctx, env.Tab(dtos.TabLegal)+"!A1:ZZ")
		return
	})
	g.Go(func() (err error) {
		brandRows, err = client.GetValues(ctx, env.Tab(dtos.TabBrands)+"!A2:C")
		return
	})
	g.Go(func() (err error) {
		filterRows, err = client.GetValues(ctx, env.Tab(dtos.TabFilter)+"!A2:B")
		return
	})
	g.Go(func() (err error) {
		defaultsGrid, err = client.GetValues(ctx, env.Tab(dtos.TabFilterDefaults)+"!A1:Z")
		return
	})
	if err := g.Wait(); err != nil {
		upstreamError(c, err)
		return
	}

	paths := categoryPaths(categoryRows)
	if len(paths) == 0 {
		// "Tab missing or empty" and "tab legitimately empty" both degrade
		// to defaults; the proxy cannot tell them apart.
		c.JSON(http.StatusOK, gin.H{"useDefaults": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":          schema.ParseProducts(productRows),
		"brands":            schema.ParseBrands(brandRows),
		"categories":        schema.BuildCategoryTree(paths),
		"properties":        schema.DeriveProperties(legalRows, propertyRows),
		"legalValues":       schema.LegalValueMap(legalRows),
		"categoryPathCount": len(paths),
		"categoryFilterMap": schema.ParseCategoryFilterMap(filterRows),
		"filterDefaultMap":  schema.ParseFilterDefaults(defaultsGrid),
	})
}

func categoryPaths(rows [][]string) []string {
	var paths []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if p := strings.TrimSpace(row[0]); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
