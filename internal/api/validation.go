package api

import (
	"net/http"
	"strconv"
	"strings"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Коды ошибок валидации на входе API
const (
	ErrTypeMismatch = "type_mismatch"
	ErrEnumInvalid  = "enum_invalid"
	ErrUnknownField = "unknown_field"
	ErrNotFound     = "not_found"
)

func ferr(code, field, msg string) FieldError {
	return FieldError{Code: code, Field: field, Message: msg}
}

func statusForErrors(errs []FieldError) int {
	for _, e := range errs {
		if e.Code == ErrNotFound {
			return http.StatusNotFound
		}
	}
	return http.StatusBadRequest
}

// validateRow проверяет строку против схемы таблицы. Это тот же уровень
// строгости, что у виджетов формы: типы колонок и enum-значения; диапазоны
// и перекрёстные ссылки не проверяются — их судит сам симулятор.
func validateRow(t scenario.Table, row scenario.Row, enums map[string]reference.EnumDirectory) []FieldError {
	var errs []FieldError
	for name, val := range row {
		f, known := t.FieldByName(name)
		if !known {
			if t.Open {
				continue // у vType набор параметров открытый
			}
			errs = append(errs, ferr(ErrUnknownField, name, "Field '"+name+"' is not part of table '"+t.Name+"'"))
			continue
		}
		if !typeOK(f.Type, val) {
			errs = append(errs, ferr(ErrTypeMismatch, name, "Field '"+name+"' must be of type "+f.Type))
			continue
		}
		if f.Enum != "" {
			if s, ok := val.(string); ok && s != "" {
				if dir, found := enums[f.Enum]; found && !dir.HasCode(s) {
					errs = append(errs, ferr(ErrEnumInvalid, name, "Value '"+s+"' is not in enum '"+f.Enum+"'"))
				}
			}
		}
	}
	return errs
}

func typeOK(ftype string, val any) bool {
	if val == nil {
		return true
	}
	switch ftype {
	case "string":
		_, ok := val.(string)
		return ok
	case "float", "int":
		switch t := val.(type) {
		case float64:
			return true
		case string:
			// пустая ячейка допустима, числовая строка — тоже
			if strings.TrimSpace(t) == "" {
				return true
			}
			_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			return err == nil
		default:
			return false
		}
	case "bool":
		_, ok := val.(bool)
		return ok
	default:
		return true
	}
}

// validateEnumValue — проверка одиночного enum-поля (настройки, проект)
func validateEnumValue(enums map[string]reference.EnumDirectory, enum, field, value string) []FieldError {
	dir, found := enums[enum]
	if !found || value == "" || dir.HasCode(value) {
		return nil
	}
	return []FieldError{ferr(ErrEnumInvalid, field, "Value '"+value+"' is not in enum '"+enum+"'")}
}
