package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sumobuild/internal/scenario"
	"sumobuild/internal/sumo"
)

// Предпросмотр сгенерированных документов. Генераторы — чистые функции
// от снапшота, так что эти ручки состояние не меняют.

// GET /api/documents
func DocumentsHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs := sumo.BuildAll(store.Snapshot())
		out := make(map[string]string, len(docs))
		for kind, body := range docs {
			out[string(kind)] = body
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/documents/:kind — один документ как XML
func DocumentHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := sumo.DocKind(c.Param("kind"))
		if _, ok := sumo.SchemaURLs[kind]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown document kind"})
			return
		}
		sn := store.Snapshot()
		var body string
		switch kind {
		case sumo.DocNodes:
			body = sumo.BuildNodes(sn)
		case sumo.DocEdges:
			body = sumo.BuildEdges(sn)
		case sumo.DocRoutes:
			body = sumo.BuildRoutes(sn)
		case sumo.DocAdditional:
			body = sumo.BuildAdditional(sn)
		case sumo.DocConfig:
			body = sumo.BuildConfig(sn)
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(body))
	}
}
