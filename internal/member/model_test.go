package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestFullName(t *testing.T) {
	m := Member{FirstName: "Mehmet", LastName: "Demir"}
	assert.Equal(t, "Mehmet Demir", m.FullName())
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("birthday already passed this year", func(t *testing.T) {
		m := Member{DateOfBirth: time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 36, m.Age(now))
	})

	t.Run("birthday not yet reached this year", func(t *testing.T) {
		m := Member{DateOfBirth: time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 35, m.Age(now))
	})

	t.Run("birthday today", func(t *testing.T) {
		m := Member{DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 36, m.Age(now))
	})
}

func TestBMI(t *testing.T) {
	t.Run("computed from height and weight", func(t *testing.T) {
		m := Member{HeightCm: f64(180), WeightKg: f64(81)}
		bmi := m.BMI()
		require.NotNil(t, bmi)
		assert.Equal(t, 25.0, *bmi)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		m := Member{HeightCm: f64(175), WeightKg: f64(70)}
		bmi := m.BMI()
		require.NotNil(t, bmi)
		assert.Equal(t, 22.86, *bmi)
	})

	t.Run("nil when height missing", func(t *testing.T) {
		m := Member{WeightKg: f64(70)}
		assert.Nil(t, m.BMI())
	})

	t.Run("nil when weight missing", func(t *testing.T) {
		m := Member{HeightCm: f64(175)}
		assert.Nil(t, m.BMI())
	})

	t.Run("nil when height is zero", func(t *testing.T) {
		m := Member{HeightCm: f64(0), WeightKg: f64(70)}
		assert.Nil(t, m.BMI())
	})
}

func TestNewProfile(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	m := Member{
		FirstName:   "Ayşe",
		LastName:    "Kaya",
		DateOfBirth: time.Date(1995, 1, 10, 0, 0, 0, 0, time.UTC),
		HeightCm:    f64(165),
		WeightKg:    f64(60),
	}

	p := NewProfile(m, now)

	assert.Equal(t, "Ayşe Kaya", p.FullName)
	assert.Equal(t, 31, p.Age)
	require.NotNil(t, p.BMI)
	assert.Equal(t, 22.04, *p.BMI)
}
