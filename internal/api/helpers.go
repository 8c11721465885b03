package api

import (
	"time"

	"github.com/sirupsen/logrus"

	"sumobuild/internal/scenario"
)

var log = logrus.WithField("module", "api")

// flatten отдаёт строку «плоской»: служебные поля + данные на одном уровне.
// Служебные ключи с подчёркиванием: у строк сценария почти всегда есть
// собственная колонка id (SUMO-идентификатор), перетирать её нельзя.
func flatten(rec *scenario.Record) map[string]any {
	out := map[string]any{
		"_id":         rec.ID,
		"_version":    rec.Version,
		"_created_at": rec.CreatedAt.Format(time.RFC3339),
		"_updated_at": rec.UpdatedAt.Format(time.RFC3339),
	}
	for k, v := range rec.Data {
		out[k] = v
	}
	return out
}

func flattenAll(recs []*scenario.Record) []map[string]any {
	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		out = append(out, flatten(rec))
	}
	return out
}
