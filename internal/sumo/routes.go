package sumo

import (
	"sort"
	"strings"

	"sumobuild/internal/scenario"
)

// BuildRoutes генерирует routes-документ: сначала все vType,
// затем route, flow и trip — в фиксированном порядке секций
func BuildRoutes(sn scenario.Snapshot) string {
	root := NewDocument("routes", SchemaURLs[DocRoutes])

	// vTypes: набор колонок открытый, каждая непустая ячейка — атрибут.
	// id всегда первый, остальные ключи сортируем, чтобы повторная
	// генерация давала идентичный документ (JSON порядок ключей не хранит).
	for _, row := range sn.Tables[scenario.TableVTypes] {
		v := root.Add("vType").Set("id", attrString(row, "id", ""))
		keys := make([]string, 0, len(row))
		for k := range row {
			if k == "id" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := Stringify(row[k]); s != "" {
				v.Set(k, s)
			}
		}
	}

	// routes: строка edges уходит как есть, только обрезаем пробелы
	for _, row := range sn.Tables[scenario.TableRoutes] {
		root.Add("route").
			Set("id", attrString(row, "id", "")).
			Set("edges", strings.TrimSpace(attrString(row, "edges", "")))
	}

	// flows: все пять полей присутствуют всегда, дефолты — как у виджетов
	for _, row := range sn.Tables[scenario.TableFlows] {
		root.Add("flow").
			Set("id", attrString(row, "id", "")).
			Set("type", attrString(row, "type", "car")).
			Set("route", attrString(row, "route", "")).
			Set("begin", attrInt(row, "begin", 0)).
			Set("end", attrInt(row, "end", 3600)).
			Set("vehsPerHour", attrInt(row, "vehsPerHour", 1000))
	}

	// trips: только непустые поля; строка без id не попадает в документ
	for _, row := range sn.Tables[scenario.TableTrips] {
		if attrString(row, "id", "") == "" {
			continue
		}
		t := root.Add("trip")
		for _, k := range []string{"id", "type", "depart", "from", "to"} {
			if v, ok := row[k]; ok {
				if s := Stringify(v); s != "" {
					t.Set(k, s)
				}
			}
		}
	}

	return root.Render()
}
