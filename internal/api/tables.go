package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

// CRUD по строкам таблиц сценария. Таблица задаётся именем в пути,
// набор таблиц фиксированный (под каждую есть свой генератор документа).

// JSON-тело null проходит ShouldBindJSON как nil-карта —
// нормализуем, иначе последующий PATCH по такой строке паникует
func normalizeRow(row scenario.Row) scenario.Row {
	if row == nil {
		return scenario.Row{}
	}
	return row
}

func tableOr404(c *gin.Context) (scenario.Table, bool) {
	name := c.Param("table")
	t, ok := scenario.TableByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return scenario.Table{}, false
	}
	return t, true
}

// GET /api/tables/:table
func ListHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, flattenAll(store.List(t.Name)))
	}
}

// POST /api/tables/:table
func CreateHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		var row scenario.Row
		if err := c.ShouldBindJSON(&row); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		row = normalizeRow(row)
		if errs := validateRow(t, row, enums); len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		rec := store.Add(t.Name, row)
		c.JSON(http.StatusCreated, flatten(rec))
	}
}

// GET /api/tables/:table/:id
func GetOneHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		rec, found := store.Get(t.Name, c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, flatten(rec))
	}
}

// PUT /api/tables/:table/:id
func UpdateHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		var row scenario.Row
		if err := c.ShouldBindJSON(&row); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		row = normalizeRow(row)
		if errs := validateRow(t, row, enums); len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		rec, found := store.Replace(t.Name, c.Param("id"), row)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, flatten(rec))
	}
}

// PATCH /api/tables/:table/:id
func UpdatePartialHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		var patch scenario.Row
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if errs := validateRow(t, patch, enums); len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		rec, found := store.Patch(t.Name, c.Param("id"), patch)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, flatten(rec))
	}
}

// DELETE /api/tables/:table/:id
func DeleteHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		if !store.Delete(t.Name, c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// PUT /api/tables/:table — замена таблицы целиком (сабмит всей формы)
func ReplaceAllHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tableOr404(c)
		if !ok {
			return
		}
		var rows []scenario.Row
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		var errs []FieldError
		for i, row := range rows {
			rows[i] = normalizeRow(row)
			errs = append(errs, validateRow(t, rows[i], enums)...)
		}
		if len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		recs := store.ReplaceAll(t.Name, rows)
		log.Debugf("table %s replaced, %d rows", t.Name, len(recs))
		c.JSON(http.StatusOK, flattenAll(recs))
	}
}
