package sumo

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

// Парсеры файлов результатов SUMO. Контракт: отсутствующий атрибут — 0,
// незнакомые теги и атрибуты молча игнорируются, битый XML — ошибка
// и пустая таблица (частичных строк не бывает).

// TripinfoRow — одна поездка из tripinfo-файла
type TripinfoRow struct {
	ID           string  `xml:"id,attr" json:"id"`
	Depart       float64 `xml:"depart,attr" json:"depart"`
	Duration     float64 `xml:"duration,attr" json:"duration"`
	RouteLength  float64 `xml:"routeLength,attr" json:"routeLength"`
	WaitingTime  float64 `xml:"waitingTime,attr" json:"waitingTime"`
	WaitingCount float64 `xml:"waitingCount,attr" json:"waitingCount"`
	DepartDelay  float64 `xml:"departDelay,attr" json:"departDelay"`
}

// SummaryRow — один шаг из summary-файла
type SummaryRow struct {
	Time           float64 `xml:"time,attr" json:"time"`
	Loaded         float64 `xml:"loaded,attr" json:"loaded"`
	Inserted       float64 `xml:"inserted,attr" json:"inserted"`
	Running        float64 `xml:"running,attr" json:"running"`
	Waiting        float64 `xml:"waiting,attr" json:"waiting"`
	Ended          float64 `xml:"ended,attr" json:"ended"`
	MeanTravelTime float64 `xml:"meanTravelTime,attr" json:"meanTravelTime"`
}

type tripinfoDoc struct {
	Trips []TripinfoRow `xml:"tripinfo"`
}

type summaryDoc struct {
	Steps []SummaryRow `xml:"step"`
}

// ParseTripinfo разбирает tripinfo.xml в табличные строки
func ParseTripinfo(data []byte) ([]TripinfoRow, error) {
	var doc tripinfoDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "can not parse tripinfo file")
	}
	return doc.Trips, nil
}

// ParseSummary разбирает summary.xml в табличные строки
func ParseSummary(data []byte) ([]SummaryRow, error) {
	var doc summaryDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "can not parse summary file")
	}
	return doc.Steps, nil
}
