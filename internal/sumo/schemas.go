package sumo

// DocKind — вид генерируемого документа
type DocKind string

const (
	DocNodes      DocKind = "nodes"
	DocEdges      DocKind = "edges"
	DocRoutes     DocKind = "routes"
	DocAdditional DocKind = "additional"
	DocConfig     DocKind = "sumocfg"
)

// DocKinds — все виды документов в порядке экспорта
var DocKinds = []DocKind{DocNodes, DocEdges, DocRoutes, DocAdditional, DocConfig}

// SchemaURLs — XSD-схемы SUMO, на которые ссылаются корневые элементы
var SchemaURLs = map[DocKind]string{
	DocNodes:      "http://sumo.dlr.de/xsd/nodes_file.xsd",
	DocEdges:      "http://sumo.dlr.de/xsd/edges_file.xsd",
	DocRoutes:     "http://sumo.dlr.de/xsd/routes_file.xsd",
	DocAdditional: "http://sumo.dlr.de/xsd/additional_file.xsd",
	DocConfig:     "http://sumo.dlr.de/xsd/sumoConfiguration.xsd",
}

// FileNames — файлы внутри экспортируемого архива
var FileNames = map[DocKind]string{
	DocNodes:      "nodes.nod.xml",
	DocEdges:      "edges.edg.xml",
	DocRoutes:     "routes.rou.xml",
	DocAdditional: "additional.add.xml",
	DocConfig:     "simulation.sumocfg",
}
