package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	roma := Point{Lat: 41.9028, Lon: 12.4964}
	milano := Point{Lat: 45.4642, Lon: 9.19}

	assert.InDelta(t, 477, DistanceKm(roma, milano), 5)
	assert.Zero(t, DistanceKm(roma, roma))
}

func TestNearbyProvincesFromAosta(t *testing.T) {
	idx := loadIndex(t)

	got, err := idx.NearbyProvinces("007003", 80)
	require.NoError(t, err)

	var ids []string
	for _, p := range got {
		ids = append(ids, p.ProvinceID)
		assert.LessOrEqual(t, p.DistanceKm, 80.0)
	}
	assert.Equal(t, []string{"007", "096", "002", "001"}, ids)
}

func TestNearbyProvincesErrors(t *testing.T) {
	idx := loadIndex(t)

	_, err := idx.NearbyProvinces("000000", 80)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = idx.NearbyProvinces("12", 80)
	assert.ErrorIs(t, err, ErrInvalidLocationIntent)
}
