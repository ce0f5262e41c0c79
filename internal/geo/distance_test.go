package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceM_SamePoint(t *testing.T) {
	p := orb.Point{-58.3816, -34.6037}
	assert.Zero(t, DistanceM(p, p))
}

func TestDistanceM_KnownDistance(t *testing.T) {
	// Obelisco to Plaza de Mayo, Buenos Aires: roughly 1 km.
	obelisco := orb.Point{-58.3816, -34.6037}
	plaza := orb.Point{-58.3724, -34.6083}

	d := DistanceM(obelisco, plaza)
	assert.InDelta(t, 990, d, 60)
}

func TestDistanceM_Symmetric(t *testing.T) {
	a := orb.Point{-58.3816, -34.6037}
	b := orb.Point{-58.4, -34.61}

	assert.InDelta(t, DistanceM(a, b), DistanceM(b, a), 1e-9)
}

func TestDistanceM_SmallOffsetNearThreshold(t *testing.T) {
	// ~50 m north of the reference point: one degree of latitude is
	// ~111,195 m at this radius, so 50 m is ~0.00044966 degrees.
	a := orb.Point{-58.3816, -34.6037}
	b := orb.Point{-58.3816, -34.6037 + 50.0/111194.93}

	d := DistanceM(a, b)
	assert.InDelta(t, 50.0, d, 0.01)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 49.99, Round2(49.994999))
	assert.Equal(t, 50.0, Round2(49.995001))
	assert.Equal(t, 0.0, Round2(0))
}
