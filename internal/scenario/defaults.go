package scenario

// Дефолтное наполнение сессии — маленький работающий сценарий
// (два узла, один edge, две модели машин, один маршрут)

var defaultSim = SimSettings{
	Begin:             0,
	End:               3600,
	StepLength:        0.1,
	RandomSeed:        42,
	LaneChangeModel:   "LC2013",
	LateralResolution: 0.8,
	TimeToTeleport:    300,
	CollisionAction:   "warn",
}

func intPtr(v int) *int { return &v }

func defaultOutputs() OutputSet {
	return OutputSet{
		"tripinfo":  {Enabled: true, File: "tripinfo.xml"},
		"fcd":       {Enabled: false, File: "fcd.xml", Freq: intPtr(1)},
		"emissions": {Enabled: false, File: "emissions.xml", Freq: intPtr(60)},
		"summary":   {Enabled: true, File: "summary.xml", Freq: intPtr(60)},
		"edgedata":  {Enabled: false, File: "edgeData.xml", Freq: intPtr(60)},
		"lanedata":  {Enabled: false, File: "laneData.xml", Freq: intPtr(60)},
	}
}

func defaultRows() map[string][]Row {
	return map[string][]Row{
		TableNodes: {
			{"id": "n1", "x": 0.0, "y": 0.0, "type": "priority"},
			{"id": "n2", "x": 100.0, "y": 0.0, "type": "priority"},
		},
		TableEdges: {
			{
				"id": "e1", "from": "n1", "to": "n2",
				"numLanes": 2, "speed": 13.89, "priority": 1,
				"laneWidth": 3.2, "allow": "", "disallow": "",
				"shape": "", "spreadType": "center", "endOffset": 0.0,
			},
		},
		TableVTypes: {
			{
				"id": "car", "vClass": "passenger", "color": "1,0,0",
				"accel": 2.6, "decel": 4.5, "emergencyDecel": 9.0,
				"length": 5.0, "minGap": 2.5, "maxSpeed": 33.33,
				"sigma": 0.5, "tau": 1.0, "speedFactor": 1.0, "speedDev": 0.1,
				"carFollowModel": "IDM",
				"lcStrategic":    1.0, "lcCooperative": 1.0, "lcKeepRight": 0.8, "lcSpeedGain": 1.0,
			},
			{
				"id": "bus", "vClass": "bus", "color": "0,0,1",
				"accel": 1.2, "decel": 4.0, "emergencyDecel": 7.0,
				"length": 12.0, "minGap": 3.0, "maxSpeed": 22.22,
				"sigma": 0.5, "tau": 1.2, "speedFactor": 0.9, "speedDev": 0.05,
				"carFollowModel": "Krauss",
				"lcStrategic":    1.0, "lcCooperative": 1.0, "lcKeepRight": 0.8, "lcSpeedGain": 0.6,
			},
		},
		TableRoutes: {
			{"id": "r1", "edges": "e1"},
		},
		TableFlows: {
			{"id": "f1", "type": "car", "route": "r1", "begin": 0, "end": 3600, "vehsPerHour": 1000},
		},
		TableTrips: {
			{"id": "t1", "type": "car", "depart": 0, "from": "e1", "to": "e1"},
		},
		TableDetectors: {
			{"id": "det1", "lane": "e1_0", "pos": 50.0, "freq": 60, "file": "e1_output.xml"},
		},
		TableTLPrograms: {
			{"id": "tls1", "type": "static", "programID": "p1", "offset": 0, "phaseStates": "GrGr|yryr|rrrr", "durations": "30,4,30"},
		},
	}
}
