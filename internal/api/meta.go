package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

// ===== META HANDLERS =====

type metaTableListItem struct {
	Name string `json:"name"`
	Open bool   `json:"open"`
}

// GET /api/meta — список таблиц
func MetaListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]metaTableListItem, 0, len(scenario.Tables))
		for _, t := range scenario.Tables {
			out = append(out, metaTableListItem{Name: t.Name, Open: t.Open})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/meta/tables/:table — схема таблицы
func MetaTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := scenario.TableByName(c.Param("table"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// GET /api/meta/enums — все enum-справочники
func MetaEnumsHandler(enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, enums)
	}
}
