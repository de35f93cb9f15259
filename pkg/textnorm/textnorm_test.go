package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "citta", Fold("Città"))
	assert.Equal(t, "valle d'aosta", Fold("  Valle   D'Aosta "))
	assert.Equal(t, "perche", Fold("PERCHÉ"))
	assert.Equal(t, "", Fold(""))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Gattino Siamese dolcissimo", "siamese"))
	assert.True(t, Contains("Micio di città", "CITTA"))
	assert.True(t, Contains("anything", ""))
	assert.False(t, Contains("Persiano", "siamese"))
}
