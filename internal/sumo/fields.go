package sumo

import (
	"strconv"
	"strings"
)

// Кодеки для строк с разделителями: фазы светофора ("GrGr|yryr|rrrr"),
// их длительности ("30,4,30") и списки edge-ов маршрута ("e1 e2 e3").
// Держим их отдельными чистыми функциями — правила отката на дефолт
// проверяются независимо от генераторов документов.

const (
	defaultPhaseState    = "GrGr"
	defaultPhaseDuration = 30
)

// SplitPhaseStates разбирает строку состояний фаз по "|".
// Пустые элементы выбрасываются; если не осталось ни одного —
// подставляется единственная дефолтная фаза.
func SplitPhaseStates(s string) []string {
	var states []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			states = append(states, part)
		}
	}
	if len(states) == 0 {
		states = []string{defaultPhaseState}
	}
	return states
}

// SplitDurations разбирает список длительностей по ",".
// Нечисловые элементы выбрасываются; пустой результат заменяется
// дефолтной длительностью.
func SplitDurations(s string) []int {
	var durs []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			durs = append(durs, n)
		}
	}
	if len(durs) == 0 {
		durs = []int{defaultPhaseDuration}
	}
	return durs
}

// PhaseDuration возвращает длительность i-й фазы: если длительностей
// меньше, чем фаз, последняя повторяется
func PhaseDuration(durs []int, i int) int {
	if i < len(durs) {
		return durs[i]
	}
	return durs[len(durs)-1]
}

// SplitRouteEdges разбирает список edge-ов маршрута (через пробелы)
func SplitRouteEdges(s string) []string {
	return strings.Fields(s)
}

// JoinRouteEdges собирает список edge-ов обратно в строку маршрута
func JoinRouteEdges(edges []string) string {
	return strings.Join(edges, " ")
}
