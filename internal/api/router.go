// api/router.go
package api

import (
	"github.com/gin-gonic/gin"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

func NewRouter(store *scenario.Store, enums map[string]reference.EnumDirectory) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/meta", MetaListHandler())
		apiGroup.GET("/meta/enums", MetaEnumsHandler(enums))
		apiGroup.GET("/meta/tables/:table", MetaTableHandler())

		// строки таблиц
		apiGroup.GET("/tables/:table", ListHandler(store))
		apiGroup.POST("/tables/:table", CreateHandler(store, enums))
		apiGroup.PUT("/tables/:table", ReplaceAllHandler(store, enums))
		apiGroup.GET("/tables/:table/:id", GetOneHandler(store))
		apiGroup.PUT("/tables/:table/:id", UpdateHandler(store, enums))
		apiGroup.PATCH("/tables/:table/:id", UpdatePartialHandler(store, enums))
		apiGroup.DELETE("/tables/:table/:id", DeleteHandler(store))

		// одиночные записи
		apiGroup.GET("/simulation", SimGetHandler(store))
		apiGroup.PUT("/simulation", SimPutHandler(store, enums))
		apiGroup.GET("/outputs", OutputsGetHandler(store))
		apiGroup.PUT("/outputs", OutputsPutHandler(store))
		apiGroup.GET("/project", ProjectGetHandler(store))
		apiGroup.PUT("/project", ProjectPutHandler(store, enums))

		// генерация и экспорт
		apiGroup.GET("/documents", DocumentsHandler(store))
		apiGroup.GET("/documents/:kind", DocumentHandler(store))
		apiGroup.GET("/export", ExportHandler(store))
		apiGroup.GET("/network/geojson", NetworkGeoJSONHandler(store))

		// аналитика по результатам прогона
		apiGroup.POST("/results/tripinfo", TripinfoUploadHandler())
		apiGroup.POST("/results/summary", SummaryUploadHandler())
	}

	return r
}

func RunServer(addr string, store *scenario.Store, enums map[string]reference.EnumDirectory) error {
	return NewRouter(store, enums).Run(addr)
}
