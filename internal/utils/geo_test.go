package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

func TestFormatAndParseLatLonRoundTrip(t *testing.T) {
	location := models.Location{Latitude: -6.2087634, Longitude: 106.845599}

	parsed, err := ParseLatLon(FormatLatLon(location))

	require.NoError(t, err)
	assert.Equal(t, location, parsed)
}

func TestFormatLatLon_NoTrailingZeros(t *testing.T) {
	assert.Equal(t, "-6.5,107", FormatLatLon(models.Location{Latitude: -6.5, Longitude: 107}))
}

func TestParseLatLon_AllowsWhitespace(t *testing.T) {
	parsed, err := ParseLatLon(" -6.2 , 106.8 ")

	require.NoError(t, err)
	assert.Equal(t, models.Location{Latitude: -6.2, Longitude: 106.8}, parsed)
}

func TestParseLatLon_Malformed(t *testing.T) {
	cases := []string{"", "106.8", "abc,def", "-6.2,106.8,extra", "-6.2;106.8"}
	for _, value := range cases {
		_, err := ParseLatLon(value)
		assert.Error(t, err, "expected parse failure for %q", value)
	}
}

func TestCellID_NearbyPointsShareCell(t *testing.T) {
	a := models.Location{Latitude: -6.20876, Longitude: 106.84559}
	b := models.Location{Latitude: -6.20877, Longitude: 106.84560}

	assert.Equal(t, CellID(a, 7), CellID(b, 7))
	assert.Len(t, CellID(a, 7), 7)
}

func TestCellID_DistantPointsDiffer(t *testing.T) {
	jakarta := models.Location{Latitude: -6.2088, Longitude: 106.8456}
	bandung := models.Location{Latitude: -6.9175, Longitude: 107.6191}

	assert.NotEqual(t, CellID(jakarta, 7), CellID(bandung, 7))
}
