package sumo

import (
	"sumobuild/internal/scenario"
)

// BuildNodes генерирует nodes-документ: по одному <node> на строку таблицы
func BuildNodes(sn scenario.Snapshot) string {
	root := NewDocument("nodes", SchemaURLs[DocNodes])
	for _, row := range sn.Tables[scenario.TableNodes] {
		root.Add("node").
			Set("id", attrString(row, "id", "")).
			Set("x", attrString(row, "x", "0")).
			Set("y", attrString(row, "y", "0")).
			Set("type", attrString(row, "type", "priority"))
	}
	return root.Render()
}
