package sumo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripinfoMissingAttrsDefaultToZero(t *testing.T) {
	// у всех трёх поездок нет waitingTime
	data := []byte(`<tripinfos>
  <tripinfo id="t1" depart="0.0" duration="95.0" routeLength="980.5"/>
  <tripinfo id="t2" depart="10.0" duration="88.0"/>
  <tripinfo id="t3" depart="20.0"/>
</tripinfos>`)
	rows, err := ParseTripinfo(data)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 0.0, r.WaitingTime)
	}
	assert.Equal(t, "t1", rows[0].ID)
	assert.Equal(t, 95.0, rows[0].Duration)
	assert.Equal(t, 980.5, rows[0].RouteLength)
	assert.Equal(t, 0.0, rows[2].Duration)
}

func TestParseTripinfoMalformed(t *testing.T) {
	rows, err := ParseTripinfo([]byte("<tripinfos><tripinfo id="))
	assert.Error(t, err)
	assert.Empty(t, rows)
}

func TestParseTripinfoUnknownTagsIgnored(t *testing.T) {
	data := []byte(`<tripinfos>
  <somethingElse foo="bar"/>
  <tripinfo id="t1" duration="5" unknownAttr="7"/>
</tripinfos>`)
	rows, err := ParseTripinfo(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5.0, rows[0].Duration)
}

func TestParseSummary(t *testing.T) {
	data := []byte(`<summary>
  <step time="0.0" loaded="10" inserted="8" running="8" waiting="2" ended="0" meanTravelTime="-1.0"/>
  <step time="60.0" running="12" meanTravelTime="84.2"/>
</summary>`)
	rows, err := ParseSummary(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[0].Time)
	assert.Equal(t, -1.0, rows[0].MeanTravelTime)
	assert.Equal(t, 60.0, rows[1].Time)
	assert.Equal(t, 84.2, rows[1].MeanTravelTime)
	// отсутствующие атрибуты — нули
	assert.Equal(t, 0.0, rows[1].Loaded)
}

func TestParseSummaryMalformed(t *testing.T) {
	rows, err := ParseSummary([]byte("not xml at all"))
	assert.Error(t, err)
	assert.Empty(t, rows)
}
