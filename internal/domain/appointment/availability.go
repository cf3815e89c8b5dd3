package appointment

import (
	"time"

	"github.com/alessandrotostes/aen-agendamentos/internal/domain/schedule"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
)

type AvailabilityInput struct {
	SalonID        uint
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TemplateFromWorkingHours converte as linhas semanais persistidas
// (chaveadas pelo inteiro estável do weekday) no template nomeado que o
// resolvedor consome. Dia inativo ou sem expediente vira entrada nula
// (fechado).
func TemplateFromWorkingHours(rows []models.WorkingHours) schedule.WeekTemplate {
	tpl := make(schedule.WeekTemplate, len(rows))

	for _, row := range rows {
		key := schedule.LocaleEN[time.Weekday(row.Weekday)]
		if key == "" {
			continue
		}

		if !row.Active || row.StartTime == "" || row.EndTime == "" {
			tpl[key] = nil
			continue
		}

		tpl[key] = &schedule.DayWindow{
			Start: row.StartTime,
			End:   row.EndTime,
		}
	}

	return tpl
}

// LunchInterval devolve a pausa de almoço do dia como intervalo
// bloqueado, no mesmo formato das reservas: um único caminho de
// conflito no filtro.
func LunchInterval(row models.WorkingHours) (schedule.Booking, bool) {
	if row.LunchStart == "" || row.LunchEnd == "" {
		return schedule.Booking{}, false
	}

	start, err := schedule.ParseClock(row.LunchStart)
	if err != nil {
		return schedule.Booking{}, false
	}

	end, err := schedule.ParseClock(row.LunchEnd)
	if err != nil || end <= start {
		return schedule.Booking{}, false
	}

	return schedule.Booking{StartMin: start, DurationMin: end - start}, true
}
