package sumo

import (
	"fmt"

	"sumobuild/internal/scenario"
)

// Опциональные атрибуты edge: пустое значение не попадает в документ
var edgeOptionalAttrs = []string{"laneWidth", "allow", "disallow", "shape", "spreadType", "endOffset"}

// BuildEdges генерирует edges-документ. Сторона движения попадает только
// в информационный комментарий: настоящую левостороннюю геометрию строит
// netconvert с флагом --lefthand, координаты здесь не трогаем.
func BuildEdges(sn scenario.Snapshot) string {
	root := NewDocument("edges", SchemaURLs[DocEdges])
	// "--" в XML-комментарии запрещён, поэтому флаг пишем без дефисов
	root.AddComment(fmt.Sprintf("Driving side: %s-hand (pass the lefthand flag to netconvert if needed)", sn.Project.DrivingSide))
	for _, row := range sn.Tables[scenario.TableEdges] {
		e := root.Add("edge").
			Set("id", attrString(row, "id", "")).
			Set("from", attrString(row, "from", "")).
			Set("to", attrString(row, "to", "")).
			Set("numLanes", attrInt(row, "numLanes", 1)).
			Set("speed", attrString(row, "speed", "13.89")).
			Set("priority", attrInt(row, "priority", 1))
		for _, opt := range edgeOptionalAttrs {
			setOptional(e, row, opt)
		}
	}
	return root.Render()
}
