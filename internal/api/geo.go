package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	geojson "github.com/paulmach/go.geojson"

	"sumobuild/internal/scenario"
	"sumobuild/internal/sumo"
)

// GET /api/network/geojson — предпросмотр сети для карты: узлы точками,
// edge-и отрезками по координатам концевых узлов. Edge с неизвестным
// узлом просто пропускается — ссылочную целостность судит симулятор.
func NetworkGeoJSONHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sn := store.Snapshot()
		fc := geojson.NewFeatureCollection()

		coords := make(map[string][]float64)
		for _, row := range sn.Tables[scenario.TableNodes] {
			id := sumo.Stringify(row["id"])
			pt := []float64{sumo.AsFloat(row["x"], 0), sumo.AsFloat(row["y"], 0)}
			if id != "" {
				coords[id] = pt
			}
			f := geojson.NewPointFeature(pt)
			f.SetProperty("id", id)
			f.SetProperty("type", sumo.Stringify(row["type"]))
			fc.AddFeature(f)
		}

		for _, row := range sn.Tables[scenario.TableEdges] {
			from, okFrom := coords[sumo.Stringify(row["from"])]
			to, okTo := coords[sumo.Stringify(row["to"])]
			if !okFrom || !okTo {
				continue
			}
			f := geojson.NewLineStringFeature([][]float64{from, to})
			f.SetProperty("id", sumo.Stringify(row["id"]))
			f.SetProperty("numLanes", sumo.AsInt(row["numLanes"], 1))
			f.SetProperty("speed", sumo.AsFloat(row["speed"], 13.89))
			fc.AddFeature(f)
		}

		c.JSON(http.StatusOK, fc)
	}
}
