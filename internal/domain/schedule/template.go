package schedule

import (
	"fmt"
	"time"
)

// DayWindow é o expediente de um dia: horários de parede "HH:MM" (24h).
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekTemplate é o template semanal de atendimento, chaveado pelo nome
// do dia conforme autoria. Chave ausente ou entrada nula = dia fechado.
type WeekTemplate map[string]*DayWindow

// Window é o expediente resolvido, em minutos desde meia-noite.
type Window struct {
	StartMin int
	EndMin   int
}

func (w Window) Duration() int {
	return w.EndMin - w.StartMin
}

// ConfigurationError indica template mal formado (horário não parseável
// ou janela invertida). O chamador trata como dia fechado; nunca
// derruba o fluxo de agendamento.
type ConfigurationError struct {
	Key   string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("schedule: janela inválida para %q: %q", e.Key, e.Value)
}

// ParseClock converte "HH:MM" em minutos desde meia-noite.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ResolveWindow resolve o expediente aplicável à data.
// Retorna (window, true, nil) quando o dia está aberto,
// (zero, false, nil) quando fechado e (zero, false, err) quando o
// template está mal formado.
func ResolveWindow(tpl WeekTemplate, date time.Time, locale WeekdayLocale) (Window, bool, error) {
	key := locale.KeyFor(date)

	dw, ok := tpl[key]
	if !ok || dw == nil {
		return Window{}, false, nil
	}

	start, err := ParseClock(dw.Start)
	if err != nil {
		return Window{}, false, &ConfigurationError{Key: key, Value: dw.Start}
	}

	end, err := ParseClock(dw.End)
	if err != nil {
		return Window{}, false, &ConfigurationError{Key: key, Value: dw.End}
	}

	if start >= end {
		return Window{}, false, &ConfigurationError{
			Key:   key,
			Value: dw.Start + "-" + dw.End,
		}
	}

	return Window{StartMin: start, EndMin: end}, true, nil
}
