package appointment

import (
	"context"
	"time"

	domain "github.com/alessandrotostes/aen-agendamentos/internal/domain/appointment"
	"github.com/alessandrotostes/aen-agendamentos/internal/domain/schedule"
	"github.com/alessandrotostes/aen-agendamentos/internal/httperr"
	"github.com/alessandrotostes/aen-agendamentos/internal/timezone"
)

// GetAvailability é o único ponto de cálculo de horários livres.
// Todas as superfícies (pública e privada) passam por aqui.
type GetAvailability struct {
	repo   domain.Repository
	engine schedule.Engine
}

func NewGetAvailability(repo domain.Repository, engine schedule.Engine) *GetAvailability {
	return &GetAvailability{repo: repo, engine: engine}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	offers, err := uc.repo.ProfessionalOffersService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, httperr.ErrBusiness("service_not_offered")
	}

	// Sem grade semanal (ou erro de leitura) = sem horários.
	// Disponibilidade nunca derruba o fluxo de agendamento.
	rows, err := uc.repo.ListWorkingHours(ctx, in.ProfessionalID)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	tpl := domain.TemplateFromWorkingHours(rows)

	loc := timezone.Location(salon.Timezone)
	date := in.Date.In(loc)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	bookings := make([]schedule.Booking, 0, len(appointments)+1)
	for _, ap := range appointments {
		start := ap.StartTime.In(loc)
		bookings = append(bookings, schedule.Booking{
			StartMin:    schedule.MinutesOfDay(start),
			DurationMin: int(ap.EndTime.Sub(ap.StartTime).Minutes()),
		})
	}

	// pausa de almoço entra como intervalo bloqueado, mesmo caminho
	// de conflito das reservas
	weekday := int(date.Weekday())
	for _, row := range rows {
		if row.Weekday != weekday || !row.Active {
			continue
		}
		if lunch, ok := domain.LunchInterval(row); ok {
			bookings = append(bookings, lunch)
		}
	}

	starts, err := uc.engine.ComputeAvailableSlots(
		tpl,
		schedule.LocaleEN,
		dayStart,
		service.DurationMin,
		bookings,
		timezone.NowIn(salon.Timezone),
	)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		startMin, perr := schedule.ParseClock(s)
		if perr != nil {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Start: s,
			End:   schedule.FormatMinutes(startMin + service.DurationMin),
		})
	}

	return slots, nil
}
