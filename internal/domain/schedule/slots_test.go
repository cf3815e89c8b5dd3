package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 1080} // 09:00–18:00

	got := GenerateCandidates(w, 15)

	require.Len(t, got, 36)
	assert.Equal(t, 540, got[0])
	assert.Equal(t, 1065, got[len(got)-1]) // 17:45, último tick < fechamento

	// ticks ordenados e espaçados pela granularidade
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 15, got[i]-got[i-1])
	}
}

func TestGenerateCandidates_JanelaDegenerada(t *testing.T) {
	// janela menor que a granularidade → vazio, nunca erro
	assert.Empty(t, GenerateCandidates(Window{StartMin: 540, EndMin: 550}, 15))
	assert.Empty(t, GenerateCandidates(Window{}, 15))
	assert.Empty(t, GenerateCandidates(Window{StartMin: 540, EndMin: 1080}, 0))
}

func TestFilterConflicts_EstouroDoExpediente(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 600} // 09:00–10:00
	candidates := GenerateCandidates(w, 15) // 09:00 09:15 09:30 09:45

	got := FilterConflicts(candidates, 30, w, nil, NoCutoff)

	// 09:45+30 passa do fechamento; 09:30+30 encosta exato e cabe
	assert.Equal(t, []int{540, 555, 570}, got)
}

func TestFilterConflicts_CorteDeHoje(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 660}
	candidates := GenerateCandidates(w, 15)

	// agora = 09:37 → 09:45 é o primeiro tick válido
	got := FilterConflicts(candidates, 15, w, nil, 9*60+37)

	require.NotEmpty(t, got)
	assert.Equal(t, 585, got[0])
	for _, s := range got {
		assert.GreaterOrEqual(t, s, 9*60+37)
	}
}

func TestFilterConflicts_Sobreposicao(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 1080}
	candidates := GenerateCandidates(w, 15)
	bookings := []Booking{{StartMin: 600, DurationMin: 30}} // 10:00–10:30

	got := FilterConflicts(candidates, 30, w, bookings, NoCutoff)

	excluded := map[int]bool{585: true, 600: true, 615: true}
	for _, s := range got {
		assert.False(t, excluded[s], "slot %s deveria ter sido removido", FormatMinutes(s))
	}

	// encostar não conflita: 09:30 termina 10:00, 10:30 começa no fim da reserva
	assert.Contains(t, got, 570)
	assert.Contains(t, got, 630)
}

func TestFilterConflicts_PreservaOrdem(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 1080}
	candidates := GenerateCandidates(w, 15)
	bookings := []Booking{
		{StartMin: 570, DurationMin: 45},
		{StartMin: 900, DurationMin: 60},
	}

	got := FilterConflicts(candidates, 30, w, bookings, NoCutoff)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestFilterConflicts_NaoMutaReservas(t *testing.T) {
	w := Window{StartMin: 540, EndMin: 720}
	bookings := []Booking{{StartMin: 600, DurationMin: 30}}

	FilterConflicts(GenerateCandidates(w, 15), 30, w, bookings, NoCutoff)

	assert.Equal(t, []Booking{{StartMin: 600, DurationMin: 30}}, bookings)
}

func TestBooking_EndMin(t *testing.T) {
	assert.Equal(t, 630, Booking{StartMin: 600, DurationMin: 30}.EndMin())
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "17:30", FormatMinutes(1050))
	assert.Equal(t, "23:45", FormatMinutes(1425))
}

func TestMinutesOfDay(t *testing.T) {
	tm := time.Date(2026, time.March, 2, 14, 7, 59, 0, time.UTC)
	assert.Equal(t, 14*60+7, MinutesOfDay(tm))
}

func TestSameDate(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	a := time.Date(2026, time.March, 2, 10, 0, 0, 0, sp)

	assert.True(t, SameDate(a, time.Date(2026, time.March, 2, 23, 59, 0, 0, sp)))
	assert.False(t, SameDate(a, time.Date(2026, time.March, 3, 0, 1, 0, 0, sp)))

	// 2026-03-03 01:00 UTC ainda é 02/03 em São Paulo (UTC-3)
	utcNext := time.Date(2026, time.March, 3, 1, 0, 0, 0, time.UTC)
	assert.True(t, SameDate(a, utcNext))
}
