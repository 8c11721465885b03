package sumo

import (
	"fmt"
	"strconv"
	"strings"

	"sumobuild/internal/scenario"
)

// Приведение значений ячеек к каноническому строковому виду атрибута.
// Значения приходят из JSON: числа — float64, остальное — строки/bool.

// Stringify возвращает каноническую строку значения.
// Для float берём кратчайшую форму, для целых — без дробной части.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// AsFloat приводит значение к float64; нечисловое значение отдаёт def
func AsFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

// AsInt приводит значение к int усечением дробной части (не округлением)
func AsInt(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int(f)
		}
	}
	return def
}

// attrString — значение ячейки как строка; def применяется только если
// ключа в строке нет (пустая строка остаётся пустой)
func attrString(row scenario.Row, key, def string) string {
	v, ok := row[key]
	if !ok {
		return def
	}
	return Stringify(v)
}

// attrInt — целочисленная ячейка как строка атрибута (усечение)
func attrInt(row scenario.Row, key string, def int) string {
	v, ok := row[key]
	if !ok {
		return strconv.Itoa(def)
	}
	return strconv.Itoa(AsInt(v, def))
}

// setOptional добавляет атрибут только при непустом строковом значении —
// правило omit-if-empty для опциональных колонок
func setOptional(e *Element, row scenario.Row, key string) {
	if v, ok := row[key]; ok {
		if s := Stringify(v); s != "" {
			e.Set(key, s)
		}
	}
}
