package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"sumobuild/internal/sumo"
)

// Загрузка файлов результатов симуляции. Битый XML — не фатально:
// отвечаем ошибкой и пустой таблицей, сессия продолжает жить.

func readUpload(c *gin.Context) ([]byte, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart file not found (field name 'file')"})
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "can not read upload", "details": err.Error()})
		return nil, false
	}
	return data, true
}

// POST /api/results/tripinfo
func TripinfoUploadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}
		rows, err := sumo.ParseTripinfo(data)
		if err != nil {
			log.Warnf("tripinfo parse failed: %v", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Failed to parse tripinfo",
				"details": err.Error(),
				"rows":    []sumo.TripinfoRow{},
			})
			return
		}
		stats := gin.H{}
		if len(rows) > 0 {
			n := float64(len(rows))
			stats["meanDuration"] = lo.SumBy(rows, func(r sumo.TripinfoRow) float64 { return r.Duration }) / n
			stats["meanWaitingTime"] = lo.SumBy(rows, func(r sumo.TripinfoRow) float64 { return r.WaitingTime }) / n
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows, "stats": stats})
	}
}

type seriesPoint struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// POST /api/results/summary
func SummaryUploadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}
		rows, err := sumo.ParseSummary(data)
		if err != nil {
			log.Warnf("summary parse failed: %v", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Failed to parse summary",
				"details": err.Error(),
				"rows":    []sumo.SummaryRow{},
			})
			return
		}
		// временной ряд meanTravelTime для графика
		series := lo.Map(rows, func(r sumo.SummaryRow, _ int) seriesPoint {
			return seriesPoint{Time: r.Time, Value: r.MeanTravelTime}
		})
		c.JSON(http.StatusOK, gin.H{"rows": rows, "series": series})
	}
}
