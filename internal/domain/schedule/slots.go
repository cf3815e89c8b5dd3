package schedule

import (
	"fmt"
	"time"
)

// Booking é um intervalo já reservado do profissional no dia,
// em minutos desde meia-noite.
type Booking struct {
	StartMin    int
	DurationMin int
}

func (b Booking) EndMin() int {
	return b.StartMin + b.DurationMin
}

// NoCutoff indica que a data avaliada não é hoje (nenhum corte de
// horário passado se aplica).
const NoCutoff = -1

// GenerateCandidates expande o expediente em ticks de início candidatos:
// todo t com w.StartMin <= t < w.EndMin, de granularityMin em
// granularityMin. Janela degenerada retorna vazio, nunca erro.
func GenerateCandidates(w Window, granularityMin int) []int {
	if granularityMin <= 0 || w.Duration() < granularityMin {
		return nil
	}

	out := make([]int, 0, w.Duration()/granularityMin)
	for t := w.StartMin; t < w.EndMin; t += granularityMin {
		out = append(out, t)
	}
	return out
}

// FilterConflicts remove candidatos que:
//   - estourariam o fim do expediente (t+duração > fechamento);
//   - já passaram, quando a data é hoje (t < todayCutoffMin);
//   - sobrepõem alguma reserva existente.
//
// Sobreposição meio-aberta: t < fim && t+duração > início.
// Encostar não conflita: reserva terminando exatamente em t não bloqueia t.
func FilterConflicts(
	candidates []int,
	durationMin int,
	w Window,
	bookings []Booking,
	todayCutoffMin int,
) []int {

	out := make([]int, 0, len(candidates))

	for _, t := range candidates {
		if t+durationMin > w.EndMin {
			continue
		}

		if todayCutoffMin != NoCutoff && t < todayCutoffMin {
			continue
		}

		conflict := false
		for _, b := range bookings {
			if t < b.EndMin() && t+durationMin > b.StartMin {
				conflict = true
				break
			}
		}

		if !conflict {
			out = append(out, t)
		}
	}

	return out
}

// MinutesOfDay retorna os minutos desde meia-noite de t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutes formata minutos desde meia-noite como "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SameDate compara apenas o dia de calendário, na location de a.
func SameDate(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
