package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEnums() map[string]reference.EnumDirectory {
	dir := func(name string, codes ...string) reference.EnumDirectory {
		d := reference.EnumDirectory{Name: name}
		for _, c := range codes {
			d.Items = append(d.Items, reference.EnumItem{Code: c})
		}
		return d
	}
	return map[string]reference.EnumDirectory{
		"node_types":         dir("node_types", "priority", "traffic_light", "dead_end"),
		"spread_types":       dir("spread_types", "right", "center", "roadCenter"),
		"collision_actions":  dir("collision_actions", "none", "teleport", "remove", "warn"),
		"lane_change_models": dir("lane_change_models", "LC2013", "SL2015", "DK2008"),
		"driving_sides":      dir("driving_sides", "right", "left"),
	}
}

func testRouter() (*gin.Engine, *scenario.Store) {
	store := scenario.NewStore(scenario.Project{
		Name:           "sumo_project",
		DrivingSide:    "right",
		NetFile:        "network.net.xml",
		RouteFile:      "routes.rou.xml",
		AdditionalFile: "additional.add.xml",
		ConfigFile:     "simulation.sumocfg",
	})
	return NewRouter(store, testEnums()), store
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListDefaults(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/tables/nodes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "n1", rows[0]["id"])
}

func TestUnknownTable(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/tables/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateNodeEnumInvalid(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPost, "/api/tables/nodes", scenario.Row{
		"id": "n3", "x": 1.0, "y": 2.0, "type": "roundabout",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrEnumInvalid)
}

func TestCreateNodeUnknownField(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPost, "/api/tables/nodes", scenario.Row{
		"id": "n3", "x": 1.0, "y": 2.0, "radius": 5.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrUnknownField)
}

func TestVTypeOpenColumns(t *testing.T) {
	// у vtypes набор колонок открытый — произвольный параметр допустим
	r, _ := testRouter()
	w := doJSON(r, http.MethodPost, "/api/tables/vtypes", scenario.Row{
		"id": "truck", "accel": 1.3, "jmIgnoreFoeProb": 0.1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRowLifecycle(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPost, "/api/tables/nodes", scenario.Row{
		"id": "n3", "x": 200.0, "y": 0.0, "type": "traffic_light",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	// служебный ULID и доменный id живут под разными ключами
	rowID := created["_id"].(string)
	require.NotEmpty(t, rowID)
	assert.Equal(t, "n3", created["id"])

	w = doJSON(r, http.MethodGet, "/api/tables/nodes/"+rowID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/tables/nodes/"+rowID, scenario.Row{"x": 250.0})
	require.Equal(t, http.StatusOK, w.Code)
	var patched map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, 250.0, patched["x"])
	assert.Equal(t, float64(2), patched["_version"])

	w = doJSON(r, http.MethodDelete, "/api/tables/nodes/"+rowID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, "/api/tables/nodes/"+rowID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNullRowBody(t *testing.T) {
	r, _ := testRouter()

	// тело null — валидный JSON, строка должна стать пустой, а не nil
	w := doJSON(r, http.MethodPost, "/api/tables/nodes", json.RawMessage("null"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	rowID := created["_id"].(string)

	w = doJSON(r, http.MethodPut, "/api/tables/nodes/"+rowID, json.RawMessage("null"))
	require.Equal(t, http.StatusOK, w.Code)

	// PATCH после null-замены раньше падал на записи в nil-карту
	w = doJSON(r, http.MethodPatch, "/api/tables/nodes/"+rowID, scenario.Row{"x": 1.0})
	require.Equal(t, http.StatusOK, w.Code)
	var patched map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, 1.0, patched["x"])

	w = doJSON(r, http.MethodPut, "/api/tables/nodes", json.RawMessage("[null]"))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestReplaceAllAndDocument(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPut, "/api/tables/nodes", []scenario.Row{
		{"id": "a1", "x": 0.0, "y": 0.0, "type": "priority"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/documents/nodes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<node id="a1" x="0" y="0" type="priority"/>`)
	assert.Equal(t, 1, strings.Count(w.Body.String(), "<node "))
}

func TestDocumentsAllKinds(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var docs map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	for _, kind := range []string{"nodes", "edges", "routes", "additional", "sumocfg"} {
		assert.Contains(t, docs, kind)
	}
	assert.Contains(t, docs["sumocfg"], `<tripinfo-output value="tripinfo.xml"/>`)
}

func TestUnknownDocumentKind(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/documents/netstate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSimPutValidatesEnums(t *testing.T) {
	r, store := testRouter()
	sim := store.Sim()
	sim.LaneChangeModel = "LC9000"
	w := doJSON(r, http.MethodPut, "/api/simulation", sim)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrEnumInvalid)

	sim.LaneChangeModel = "SL2015"
	sim.End = 7200
	w = doJSON(r, http.MethodPut, "/api/simulation", sim)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7200, store.Sim().End)
}

func TestOutputsPutStripsTripinfoFreq(t *testing.T) {
	r, store := testRouter()
	freq := 10
	out := store.Outputs()
	out["tripinfo"] = scenario.OutputToggle{Enabled: true, File: "tripinfo.xml", Freq: &freq}
	w := doJSON(r, http.MethodPut, "/api/outputs", out)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, store.Outputs()["tripinfo"].Freq)
}

func TestOutputsPutUnknownKind(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPut, "/api/outputs", map[string]scenario.OutputToggle{
		"netstate": {Enabled: true, File: "netstate.xml"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrUnknownField)
}

func TestProjectPutDrivingSide(t *testing.T) {
	r, store := testRouter()
	p := store.Project()
	p.DrivingSide = "middle"
	w := doJSON(r, http.MethodPut, "/api/project", p)
	require.Equal(t, http.StatusBadRequest, w.Code)

	p.DrivingSide = "left"
	w = doJSON(r, http.MethodPut, "/api/project", p)
	require.Equal(t, http.StatusOK, w.Code)

	// сторона движения попадает в комментарий edges-документа
	w = doJSON(r, http.MethodGet, "/api/documents/edges", nil)
	assert.Contains(t, w.Body.String(), "Driving side: left-hand")
}

func TestExportDownload(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	cd := w.Header().Get("Content-Disposition")
	assert.Contains(t, cd, `attachment; filename="sumo_project_`)
	assert.Contains(t, cd, ".zip")
	// PK — сигнатура zip
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestNetworkGeoJSON(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodGet, "/api/network/geojson", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	// два узла и один edge из дефолтного сценария
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, "LineString", fc.Features[2].Geometry.Type)
}

func doUpload(r *gin.Engine, path string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "result.xml")
	_, _ = fw.Write(content)
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTripinfoUploadStats(t *testing.T) {
	r, _ := testRouter()
	data := []byte(`<tripinfos>
  <tripinfo id="t1" duration="100" waitingTime="10"/>
  <tripinfo id="t2" duration="50" waitingTime="20"/>
</tripinfos>`)
	w := doUpload(r, "/api/results/tripinfo", data)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Rows  []map[string]any   `json:"rows"`
		Stats map[string]float64 `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 2)
	assert.Equal(t, 75.0, resp.Stats["meanDuration"])
	assert.Equal(t, 15.0, resp.Stats["meanWaitingTime"])
}

func TestTripinfoUploadMalformedFailsSoft(t *testing.T) {
	r, _ := testRouter()
	w := doUpload(r, "/api/results/tripinfo", []byte("<tripinfos><tripinfo"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Error string           `json:"error"`
		Rows  []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Rows)
}

func TestSummaryUploadSeries(t *testing.T) {
	r, _ := testRouter()
	data := []byte(`<summary>
  <step time="0" meanTravelTime="10"/>
  <step time="60" meanTravelTime="12"/>
</summary>`)
	w := doUpload(r, "/api/results/summary", data)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Series []struct {
			Time  float64 `json:"time"`
			Value float64 `json:"value"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Series, 2)
	assert.Equal(t, 60.0, resp.Series[1].Time)
	assert.Equal(t, 12.0, resp.Series[1].Value)
}

func TestUploadWithoutFile(t *testing.T) {
	r, _ := testRouter()
	w := doJSON(r, http.MethodPost, "/api/results/tripinfo", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetaEndpoints(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(r, http.MethodGet, "/api/meta", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tables []metaTableListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	assert.Len(t, tables, len(scenario.Tables))

	w = doJSON(r, http.MethodGet, "/api/meta/tables/edges", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "laneWidth")

	w = doJSON(r, http.MethodGet, "/api/meta/enums", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "collision_actions")
}
