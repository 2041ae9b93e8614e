package csvlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `plant_name,updated_time,production-this_month(kwh),anticipated_yield(idr)_tarif_sosial_pln_-_rp.900/kwh,capacity
SMKN 1 Bandung PLTS,2024-07-31 23:59,412.5,371250,5.5
SMKN 1 Bandung PLTS,2024-08-31 23:59,"1,020.0",918000,5.5
SMAN 2 Bekasi PLTS,2024-07-31 23:59,250,225000,3.3
,2024-07-31 23:59,999,999,1
SMAN 2 Bekasi PLTS,,100,90000,3.3
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV))

	require.NoError(t, err)
	// Rows without a plant name or timestamp are dropped.
	require.Len(t, records, 3)

	assert.Equal(t, "smkn 1 bandung plts", records[0].PlantName)
	assert.Equal(t, "2024-07", records[0].Month)
	assert.Equal(t, 412.5, records[0].ProductionKwh)
	assert.Equal(t, 371250.0, records[0].SavingsIDR)
	assert.Equal(t, 5.5, records[0].CapacityKwp)

	// Thousand separators in numbers are tolerated.
	assert.Equal(t, 1020.0, records[1].ProductionKwh)

	assert.Equal(t, "sman 2 bekasi plts", records[2].PlantName)
	assert.Equal(t, "2024-07", records[2].Month)
}

func TestRead_MissingRequiredColumn(t *testing.T) {
	_, err := Read(strings.NewReader("plant_name,updated_time\nfoo,2024-07-31\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestRead_HeaderCaseInsensitive(t *testing.T) {
	csv := "Plant_Name,Updated_Time,Production-This_Month(kWh),anticipated_yield(idr)_tarif_sosial_pln_-_rp.900/kwh,Capacity\n" +
		"SDN 2 Bogor PLTS,2025-01-31 10:00,300,270000,2.2\n"

	records, err := Read(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sdn 2 bogor plts", records[0].PlantName)
	assert.Equal(t, "2025-01", records[0].Month)
}

func TestRead_BlankNumericFields(t *testing.T) {
	csv := "plant_name,updated_time,production-this_month(kwh),anticipated_yield(idr)_tarif_sosial_pln_-_rp.900/kwh,capacity\n" +
		"SMA 1 PLTS,2024-09-30 08:00,,,\n"

	records, err := Read(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].ProductionKwh)
	assert.Equal(t, 0.0, records[0].SavingsIDR)
	assert.Equal(t, 0.0, records[0].CapacityKwp)
}
