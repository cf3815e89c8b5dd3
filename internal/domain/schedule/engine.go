package schedule

import (
	"errors"
	"time"
)

const DefaultGranularityMin = 15

// Violações de contrato do chamador: bug de integração, não estado
// de negócio. Dia fechado, agenda lotada e template mal formado nunca
// retornam erro: viram lista vazia.
var (
	ErrInvalidDuration    = errors.New("schedule: duração de serviço inválida")
	ErrInvalidGranularity = errors.New("schedule: granularidade inválida")
)

// Engine computa os horários livres de um profissional para uma data.
// Função pura: sem I/O, sem estado entre chamadas, seguro para uso
// concorrente.
type Engine struct {
	GranularityMin int
}

func NewEngine(granularityMin int) Engine {
	if granularityMin <= 0 {
		granularityMin = DefaultGranularityMin
	}
	return Engine{GranularityMin: granularityMin}
}

// ComputeAvailableSlots resolve o expediente do dia, gera os candidatos
// e filtra conflitos. Saída: inícios "HH:MM" em ordem crescente.
//
// `now` é parâmetro explícito; o corte de horário passado só se aplica
// quando `date` e `now` caem no mesmo dia de calendário.
func (e Engine) ComputeAvailableSlots(
	tpl WeekTemplate,
	locale WeekdayLocale,
	date time.Time,
	durationMin int,
	bookings []Booking,
	now time.Time,
) ([]string, error) {

	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if e.GranularityMin <= 0 {
		return nil, ErrInvalidGranularity
	}

	w, open, err := ResolveWindow(tpl, date, locale)
	if err != nil {
		// template mal formado = dia fechado (fail safe)
		return []string{}, nil
	}
	if !open {
		return []string{}, nil
	}

	cutoff := NoCutoff
	if SameDate(date, now) {
		cutoff = MinutesOfDay(now.In(date.Location()))
	}

	candidates := GenerateCandidates(w, e.GranularityMin)
	free := FilterConflicts(candidates, durationMin, w, bookings, cutoff)

	out := make([]string, 0, len(free))
	for _, t := range free {
		out = append(out, FormatMinutes(t))
	}

	return out, nil
}
