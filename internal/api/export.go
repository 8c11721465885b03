package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sumobuild/internal/archive"
	"sumobuild/internal/scenario"
	"sumobuild/internal/sumo"
)

// GET /api/export — собрать сценарий и отдать ZIP на скачивание
func ExportHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sn := store.Snapshot()
		docs := sumo.BuildAll(sn)
		data, name, err := archive.Build(docs, sn.Project, time.Now())
		if err != nil {
			log.Errorf("export failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "archive error", "details": err.Error()})
			return
		}
		log.Infof("exported %s (%d bytes)", name, len(data))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
		c.Data(http.StatusOK, "application/zip", data)
	}
}
