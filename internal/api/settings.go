package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

// Одиночные записи: параметры прогона, переключатели выводов, проект.

// GET /api/simulation
func SimGetHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Sim())
	}
}

// PUT /api/simulation
func SimPutHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sim scenario.SimSettings
		if err := c.ShouldBindJSON(&sim); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		var errs []FieldError
		errs = append(errs, validateEnumValue(enums, "lane_change_models", "laneChangeModel", sim.LaneChangeModel)...)
		errs = append(errs, validateEnumValue(enums, "collision_actions", "collisionAction", sim.CollisionAction)...)
		if len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		store.SetSim(sim)
		c.JSON(http.StatusOK, store.Sim())
	}
}

// GET /api/outputs
func OutputsGetHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Outputs())
	}
}

// PUT /api/outputs
func OutputsPutHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var out scenario.OutputSet
		if err := c.ShouldBindJSON(&out); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		known := make(map[string]bool, len(scenario.OutputKinds))
		for _, k := range scenario.OutputKinds {
			known[k] = true
		}
		var errs []FieldError
		for kind := range out {
			if !known[kind] {
				errs = append(errs, ferr(ErrUnknownField, kind, "Unknown output kind '"+kind+"'"))
			}
		}
		if len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		// у tripinfo частоты нет — наличие freq определяет сам вид вывода
		if t, ok := out["tripinfo"]; ok {
			t.Freq = nil
			out["tripinfo"] = t
		}
		store.SetOutputs(out)
		c.JSON(http.StatusOK, store.Outputs())
	}
}

// GET /api/project
func ProjectGetHandler(store *scenario.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Project())
	}
}

// PUT /api/project
func ProjectPutHandler(store *scenario.Store, enums map[string]reference.EnumDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p scenario.Project
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if errs := validateEnumValue(enums, "driving_sides", "drivingSide", p.DrivingSide); len(errs) > 0 {
			c.JSON(statusForErrors(errs), gin.H{"errors": errs})
			return
		}
		store.SetProject(p)
		c.JSON(http.StatusOK, store.Project())
	}
}
