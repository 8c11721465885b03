package sumo

import (
	"strconv"

	"sumobuild/internal/scenario"
)

// Имена элементов секции <output> должны байт-в-байт совпадать
// с опциями SUMO; у fcd/emissions/summary частота пишется суффиксом
// ".step", у edgedata/lanedata — ".period", у tripinfo частоты нет.
type outputSpec struct {
	kind        string
	element     string
	freqSuffix  string // пусто — частота не пишется
	defaultFreq int
}

var outputSpecs = []outputSpec{
	{kind: "tripinfo", element: "tripinfo-output"},
	{kind: "fcd", element: "fcd-output", freqSuffix: ".step", defaultFreq: 1},
	{kind: "emissions", element: "emission-output", freqSuffix: ".step", defaultFreq: 60},
	{kind: "summary", element: "summary-output", freqSuffix: ".step", defaultFreq: 60},
	{kind: "edgedata", element: "edgeData-output", freqSuffix: ".period", defaultFreq: 60},
	{kind: "lanedata", element: "laneData-output", freqSuffix: ".period", defaultFreq: 60},
}

// BuildConfig генерирует .sumocfg: фиксированный скелет секций
// input/time/processing/simulation/collision/report/output
func BuildConfig(sn scenario.Snapshot) string {
	root := NewDocument("configuration", SchemaURLs[DocConfig])
	sim := sn.Sim

	input := root.Add("input")
	input.Add("net-file").Set("value", sn.Project.NetFile)
	input.Add("route-files").Set("value", sn.Project.RouteFile)
	if sn.Project.AdditionalFile != "" {
		input.Add("additional-files").Set("value", sn.Project.AdditionalFile)
	}

	timeNode := root.Add("time")
	timeNode.Add("begin").Set("value", strconv.Itoa(sim.Begin))
	timeNode.Add("end").Set("value", strconv.Itoa(sim.End))
	timeNode.Add("step-length").Set("value", Stringify(sim.StepLength))

	root.Add("processing").
		Add("lateral-resolution").Set("value", Stringify(sim.LateralResolution))

	root.Add("simulation").
		Add("time-to-teleport").Set("value", strconv.Itoa(sim.TimeToTeleport))

	root.Add("collision").
		Add("action").Set("value", sim.CollisionAction)

	report := root.Add("report")
	report.Add("verbose").Set("value", "true")
	report.Add("no-step-log").Set("value", "false")

	out := root.Add("output")
	for _, spec := range outputSpecs {
		toggle, ok := sn.Outputs[spec.kind]
		if !ok || !toggle.Enabled {
			continue
		}
		out.Add(spec.element).Set("value", toggle.File)
		if spec.freqSuffix == "" {
			continue
		}
		freq := spec.defaultFreq
		if toggle.Freq != nil {
			freq = *toggle.Freq
		}
		out.Add(spec.element+spec.freqSuffix).Set("value", strconv.Itoa(freq))
	}

	return root.Render()
}

// BuildAll генерирует все пять документов за один проход по снапшоту
func BuildAll(sn scenario.Snapshot) map[DocKind]string {
	return map[DocKind]string{
		DocNodes:      BuildNodes(sn),
		DocEdges:      BuildEdges(sn),
		DocRoutes:     BuildRoutes(sn),
		DocAdditional: BuildAdditional(sn),
		DocConfig:     BuildConfig(sn),
	}
}
