package scenario

// Field описывает одну колонку таблицы сценария
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`           // string, float, int, bool
	Enum     string `json:"enum,omitempty"` // имя справочника, если значения ограничены
	Optional bool   `json:"optional"`       // опциональный атрибут: пустое значение не попадает в XML
}

// Table описывает таблицу сущностей редактора
type Table struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
	// Open разрешает произвольные дополнительные колонки (vType-параметры
	// SUMO открытый список, пользователь волен добавлять свои)
	Open bool `json:"open"`
}

// Имена таблиц (фиксированный набор — под каждую есть свой XML-генератор)
const (
	TableNodes      = "nodes"
	TableEdges      = "edges"
	TableVTypes     = "vtypes"
	TableRoutes     = "routes"
	TableFlows      = "flows"
	TableTrips      = "trips"
	TableDetectors  = "detectors"
	TableTLPrograms = "tlprograms"
)

// Tables — схемы всех таблиц в порядке показа
var Tables = []Table{
	{
		Name: TableNodes,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "x", Type: "float"},
			{Name: "y", Type: "float"},
			{Name: "type", Type: "string", Enum: "node_types"},
		},
	},
	{
		Name: TableEdges,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "from", Type: "string"},
			{Name: "to", Type: "string"},
			{Name: "numLanes", Type: "int"},
			{Name: "speed", Type: "float"},
			{Name: "priority", Type: "int"},
			{Name: "laneWidth", Type: "float", Optional: true},
			{Name: "allow", Type: "string", Optional: true},
			{Name: "disallow", Type: "string", Optional: true},
			{Name: "shape", Type: "string", Optional: true},
			{Name: "spreadType", Type: "string", Enum: "spread_types", Optional: true},
			{Name: "endOffset", Type: "float", Optional: true},
		},
	},
	{
		Name: TableVTypes,
		Open: true,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "vClass", Type: "string", Enum: "vehicle_classes"},
			{Name: "color", Type: "string"},
			{Name: "accel", Type: "float"},
			{Name: "decel", Type: "float"},
			{Name: "emergencyDecel", Type: "float"},
			{Name: "length", Type: "float"},
			{Name: "minGap", Type: "float"},
			{Name: "maxSpeed", Type: "float"},
			{Name: "sigma", Type: "float"},
			{Name: "tau", Type: "float"},
			{Name: "speedFactor", Type: "float"},
			{Name: "speedDev", Type: "float"},
			{Name: "carFollowModel", Type: "string", Enum: "car_follow_models"},
			{Name: "lcStrategic", Type: "float"},
			{Name: "lcCooperative", Type: "float"},
			{Name: "lcKeepRight", Type: "float"},
			{Name: "lcSpeedGain", Type: "float"},
		},
	},
	{
		Name: TableRoutes,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "edges", Type: "string"},
		},
	},
	{
		Name: TableFlows,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "type", Type: "string"},
			{Name: "route", Type: "string"},
			{Name: "begin", Type: "int"},
			{Name: "end", Type: "int"},
			{Name: "vehsPerHour", Type: "int"},
		},
	},
	{
		Name: TableTrips,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "type", Type: "string", Optional: true},
			{Name: "depart", Type: "int", Optional: true},
			{Name: "from", Type: "string", Optional: true},
			{Name: "to", Type: "string", Optional: true},
		},
	},
	{
		Name: TableDetectors,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "lane", Type: "string"},
			{Name: "pos", Type: "float"},
			{Name: "freq", Type: "int"},
			{Name: "file", Type: "string"},
		},
	},
	{
		Name: TableTLPrograms,
		Fields: []Field{
			{Name: "id", Type: "string"},
			{Name: "type", Type: "string", Enum: "tl_types"},
			{Name: "programID", Type: "string"},
			{Name: "offset", Type: "int"},
			{Name: "phaseStates", Type: "string"},
			{Name: "durations", Type: "string"},
		},
	},
}

// TableByName возвращает схему таблицы по имени
func TableByName(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// FieldByName ищет колонку в схеме таблицы
func (t Table) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
