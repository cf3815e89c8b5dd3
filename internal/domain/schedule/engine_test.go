package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segunda-feira, dia aberto 09:00–18:00
func templateSegunda() WeekTemplate {
	return WeekTemplate{
		"segunda": &DayWindow{Start: "09:00", End: "18:00"},
	}
}

var (
	segunda = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	// "agora" em outro dia: nenhum corte de horário passado
	outroDia = time.Date(2026, time.February, 27, 12, 0, 0, 0, time.UTC)
)

func TestComputeAvailableSlots_DiaSemReservas(t *testing.T) {
	engine := NewEngine(15)

	slots, err := engine.ComputeAvailableSlots(
		templateSegunda(), LocalePT, segunda, 30, nil, outroDia,
	)

	require.NoError(t, err)

	// 09:00..17:30 de 15 em 15: 35 inícios possíveis
	require.Len(t, slots, 35)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])
}

func TestComputeAvailableSlots_ComReservaExistente(t *testing.T) {
	engine := NewEngine(15)
	bookings := []Booking{{StartMin: 600, DurationMin: 30}} // 10:00–10:30

	slots, err := engine.ComputeAvailableSlots(
		templateSegunda(), LocalePT, segunda, 30, bookings, outroDia,
	)

	require.NoError(t, err)

	assert.NotContains(t, slots, "09:45")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:15")

	// fronteiras encostadas continuam reserváveis
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")

	// 35 inícios do dia livre menos os 3 que invadem a reserva
	assert.Len(t, slots, 32)
}

func TestComputeAvailableSlots_CorteDeHoje(t *testing.T) {
	engine := NewEngine(15)
	now := time.Date(2026, time.March, 2, 14, 7, 0, 0, time.UTC)

	slots, err := engine.ComputeAvailableSlots(
		templateSegunda(), LocalePT, segunda, 30, nil, now,
	)

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:15", slots[0])
	assert.NotContains(t, slots, "14:00")
}

func TestComputeAvailableSlots_DiaFechado(t *testing.T) {
	engine := NewEngine(15)
	tpl := WeekTemplate{"terca": &DayWindow{Start: "09:00", End: "18:00"}}
	bookings := []Booking{{StartMin: 600, DurationMin: 30}}

	// dia fechado → vazio, independente das reservas passadas
	slots, err := engine.ComputeAvailableSlots(tpl, LocalePT, segunda, 30, bookings, outroDia)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_TemplateMalFormado(t *testing.T) {
	engine := NewEngine(15)
	tpl := WeekTemplate{"segunda": &DayWindow{Start: "9h00", End: "18:00"}}

	// mal formado degrada para "sem horários", nunca erro
	slots, err := engine.ComputeAvailableSlots(tpl, LocalePT, segunda, 30, nil, outroDia)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_ServicoPreencheJanelaExata(t *testing.T) {
	engine := NewEngine(15)
	tpl := WeekTemplate{"segunda": &DayWindow{Start: "09:00", End: "10:00"}}

	// 60min em janela de 60min: encosta no fechamento e cabe
	slots, err := engine.ComputeAvailableSlots(tpl, LocalePT, segunda, 60, nil, outroDia)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)
}

func TestComputeAvailableSlots_JanelaMenorQueServico(t *testing.T) {
	engine := NewEngine(15)
	tpl := WeekTemplate{"segunda": &DayWindow{Start: "09:00", End: "09:45"}}

	slots, err := engine.ComputeAvailableSlots(tpl, LocalePT, segunda, 60, nil, outroDia)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_Idempotente(t *testing.T) {
	engine := NewEngine(15)
	bookings := []Booking{
		{StartMin: 600, DurationMin: 45},
		{StartMin: 840, DurationMin: 30},
	}

	a, err := engine.ComputeAvailableSlots(templateSegunda(), LocalePT, segunda, 30, bookings, outroDia)
	require.NoError(t, err)

	b, err := engine.ComputeAvailableSlots(templateSegunda(), LocalePT, segunda, 30, bookings, outroDia)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeAvailableSlots_NuncaSobrepoeReserva(t *testing.T) {
	engine := NewEngine(15)
	duration := 30
	bookings := []Booking{
		{StartMin: 570, DurationMin: 45},
		{StartMin: 780, DurationMin: 60},
		{StartMin: 1020, DurationMin: 30},
	}

	slots, err := engine.ComputeAvailableSlots(templateSegunda(), LocalePT, segunda, duration, bookings, outroDia)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		start, perr := ParseClock(s)
		require.NoError(t, perr)

		// dentro do expediente e cabendo por inteiro
		assert.GreaterOrEqual(t, start, 540)
		assert.LessOrEqual(t, start+duration, 1080)

		for _, b := range bookings {
			overlap := start < b.EndMin() && start+duration > b.StartMin
			assert.False(t, overlap,
				"slot %s sobrepõe reserva %s–%s",
				s, FormatMinutes(b.StartMin), FormatMinutes(b.EndMin()))
		}
	}
}

func TestComputeAvailableSlots_ContratoDoChamador(t *testing.T) {
	_, err := NewEngine(15).ComputeAvailableSlots(templateSegunda(), LocalePT, segunda, 0, nil, outroDia)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Engine{GranularityMin: -1}.ComputeAvailableSlots(templateSegunda(), LocalePT, segunda, 30, nil, outroDia)
	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

func TestNewEngine_GranularidadePadrao(t *testing.T) {
	assert.Equal(t, DefaultGranularityMin, NewEngine(0).GranularityMin)
	assert.Equal(t, 30, NewEngine(30).GranularityMin)
}
