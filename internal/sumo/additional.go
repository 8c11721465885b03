package sumo

import (
	"strconv"

	"sumobuild/internal/scenario"
)

// BuildAdditional генерирует additional-документ: детекторы E1
// и программы светофоров с развёрнутыми фазами
func BuildAdditional(sn scenario.Snapshot) string {
	root := NewDocument("additional", SchemaURLs[DocAdditional])

	for _, row := range sn.Tables[scenario.TableDetectors] {
		root.Add("e1Detector").
			Set("id", attrString(row, "id", "det")).
			Set("lane", attrString(row, "lane", "")).
			Set("pos", attrString(row, "pos", "0")).
			Set("freq", attrInt(row, "freq", 60)).
			Set("file", attrString(row, "file", "e1_output.xml"))
	}

	for _, row := range sn.Tables[scenario.TableTLPrograms] {
		tl := root.Add("tlLogic").
			Set("id", attrString(row, "id", "tls1")).
			Set("type", attrString(row, "type", "static")).
			Set("programID", attrString(row, "programID", "p1")).
			Set("offset", attrInt(row, "offset", 0))

		states := SplitPhaseStates(attrString(row, "phaseStates", defaultPhaseState))
		durs := SplitDurations(attrString(row, "durations", strconv.Itoa(defaultPhaseDuration)))
		for i, state := range states {
			tl.Add("phase").
				Set("duration", strconv.Itoa(PhaseDuration(durs, i))).
				Set("state", state)
		}
	}

	return root.Render()
}
