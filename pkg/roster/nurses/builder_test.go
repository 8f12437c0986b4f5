package nurses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultCounts(t *testing.T) {
	sc, err := Build(DefaultConfig())
	require.NoError(t, err)

	m := sc.Model()
	// 4*7*4 shift variables plus 4*3 works indicators
	assert.Equal(t, 124, m.NumVars())
	// 28 coverage + 28 one-slot-per-day + 4 off-day windows + 3 caps
	assert.Len(t, m.Linears(), 63)
	// one indicator per (nurse, working shift)
	assert.Len(t, m.MaxEqualities(), 12)
	// adjacency clauses for shifts 2 and 3, per nurse per day
	assert.Len(t, m.Clauses(), 56)
	assert.Equal(t, 131, m.NumConstraints())
}

func TestBuildVariableNames(t *testing.T) {
	sc, err := Build(DefaultConfig())
	require.NoError(t, err)

	m := sc.Model()
	assert.Equal(t, "shift_n0_d0_s0", m.NameOf(sc.ShiftVar(0, 0, 0)))
	assert.Equal(t, "shift_n2_d5_s3", m.NameOf(sc.ShiftVar(2, 5, 3)))
	assert.Equal(t, "works_shift_n0_s1", m.NameOf(sc.WorksVar(0, 1)))
	assert.Equal(t, "works_shift_n3_s3", m.NameOf(sc.WorksVar(3, 3)))
}

func TestBuildDistinctVariables(t *testing.T) {
	sc, err := Build(DefaultConfig())
	require.NoError(t, err)

	cfg := sc.Config()
	seen := map[int32]bool{}
	for n := 0; n < cfg.Nurses; n++ {
		for d := 0; d < cfg.Days; d++ {
			for s := 0; s < cfg.Shifts; s++ {
				v := int32(sc.ShiftVar(n, d, s))
				assert.False(t, seen[v], "duplicate variable for (%d,%d,%d)", n, d, s)
				seen[v] = true
			}
		}
		for s := 1; s < cfg.Shifts; s++ {
			v := int32(sc.WorksVar(n, s))
			assert.False(t, seen[v], "duplicate works variable for (%d,%d)", n, s)
			seen[v] = true
		}
	}
}

func TestBuildSingleShiftInstance(t *testing.T) {
	// One shift means everyone is off every day; no indicators, caps or
	// adjacency clauses exist.
	sc, err := Build(Config{Nurses: 1, Shifts: 1, Days: 3, MinDaysOff: 3, MaxDaysOff: 3})
	require.NoError(t, err)

	m := sc.Model()
	assert.Equal(t, 3, m.NumVars())
	assert.Empty(t, m.MaxEqualities())
	assert.Empty(t, m.Clauses())
}

func TestConfigValidate(t *testing.T) {
	type tc struct {
		Name   string
		Mutate func(*Config)
		Valid  bool
	}

	for _, tt := range []tc{
		{
			Name:   "defaults",
			Mutate: func(*Config) {},
			Valid:  true,
		},
		{
			Name:   "zero nurses",
			Mutate: func(c *Config) { c.Nurses = 0 },
		},
		{
			Name:   "negative shifts",
			Mutate: func(c *Config) { c.Shifts = -1 },
		},
		{
			Name:   "zero days",
			Mutate: func(c *Config) { c.Days = 0 },
		},
		{
			Name:   "negative off-day bound",
			Mutate: func(c *Config) { c.MinDaysOff = -1 },
		},
		{
			Name:   "negative shift cap",
			Mutate: func(c *Config) { c.MaxNursesPerShift = -1 },
		},
		{
			// feasibility is the engine's verdict, not Validate's
			Name:   "empty off-day window",
			Mutate: func(c *Config) { c.MinDaysOff = 2; c.MaxDaysOff = 1 },
			Valid:  true,
		},
		{
			Name:   "mismatched nurse and shift counts",
			Mutate: func(c *Config) { c.Nurses = 3 },
			Valid:  true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.Mutate(&cfg)
			err := cfg.Validate()
			if tt.Valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]interface{}{
		"nurses": 5,
		"shifts": 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Nurses)
	assert.Equal(t, 5, cfg.Shifts)
	// unnamed fields keep their defaults
	assert.Equal(t, DefaultConfig().Days, cfg.Days)
	assert.Equal(t, DefaultConfig().MaxNursesPerShift, cfg.MaxNursesPerShift)
}

func TestConfigFromMapRejectsUnknownKeys(t *testing.T) {
	_, err := ConfigFromMap(map[string]interface{}{"nursse": 5})
	assert.Error(t, err)
}

func TestConfigFromMapAcceptsJSONNumbers(t *testing.T) {
	// JSON decoding hands numbers over as float64
	cfg, err := ConfigFromMap(map[string]interface{}{"days": float64(14)})
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Days)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	_, err := Build(Config{})
	assert.Error(t, err)
}
