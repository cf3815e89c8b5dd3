package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"18:30", 1110, false},
		{"23:59", 1439, false},
		{"", 0, true},
		{"9h00", 0, true},
		{"25:00", 0, true},
		{"09:60", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.wantMin, got, "input %q", c.in)
	}
}

func TestResolveWindow_DiaAberto(t *testing.T) {
	tpl := WeekTemplate{
		"segunda": &DayWindow{Start: "09:00", End: "18:00"},
	}

	// 2026-03-02 é segunda-feira
	w, open, err := ResolveWindow(tpl, date(2026, time.March, 2), LocalePT)

	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, 540, w.StartMin)
	assert.Equal(t, 1080, w.EndMin)
	assert.Equal(t, 540, w.Duration())
}

func TestResolveWindow_DiaFechado(t *testing.T) {
	tpl := WeekTemplate{
		"segunda": &DayWindow{Start: "09:00", End: "18:00"},
		"domingo": nil, // marcado explicitamente como não trabalha
	}

	// 2026-03-01 é domingo: entrada nula
	_, open, err := ResolveWindow(tpl, date(2026, time.March, 1), LocalePT)
	require.NoError(t, err)
	assert.False(t, open)

	// 2026-03-03 é terça: chave ausente
	_, open, err = ResolveWindow(tpl, date(2026, time.March, 3), LocalePT)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestResolveWindow_TemplateMalFormado(t *testing.T) {
	cases := map[string]WeekTemplate{
		"start inválido":   {"segunda": &DayWindow{Start: "9h", End: "18:00"}},
		"end inválido":     {"segunda": &DayWindow{Start: "09:00", End: "abc"}},
		"janela invertida": {"segunda": &DayWindow{Start: "18:00", End: "09:00"}},
		"janela vazia":     {"segunda": &DayWindow{Start: "09:00", End: "09:00"}},
	}

	for name, tpl := range cases {
		_, open, err := ResolveWindow(tpl, date(2026, time.March, 2), LocalePT)

		require.Error(t, err, name)
		assert.False(t, open, name)

		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, name)
	}
}

func TestResolveWindow_LocaleNuloCaiNoCanonico(t *testing.T) {
	tpl := WeekTemplate{
		"monday": &DayWindow{Start: "08:00", End: "12:00"},
	}

	w, open, err := ResolveWindow(tpl, date(2026, time.March, 2), nil)

	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, 480, w.StartMin)
	assert.Equal(t, 720, w.EndMin)
}

func TestWeekdayLocale_KeyFor(t *testing.T) {
	monday := date(2026, time.March, 2)

	assert.Equal(t, "segunda", LocalePT.KeyFor(monday))
	assert.Equal(t, "monday", LocaleEN.KeyFor(monday))
	assert.Equal(t, "monday", WeekdayLocale(nil).KeyFor(monday))
}
