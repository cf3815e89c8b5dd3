package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alessandrotostes/aen-agendamentos/internal/audit"
	domain "github.com/alessandrotostes/aen-agendamentos/internal/domain/appointment"
	"github.com/alessandrotostes/aen-agendamentos/internal/httperr"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
	"github.com/alessandrotostes/aen-agendamentos/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID        uint
	ProfessionalID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Salão
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone do salão
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima
	// --------------------------------------------------
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4️⃣ Serviço + profissional
	// --------------------------------------------------
	service, err := uc.repo.GetService(
		ctx,
		in.SalonID,
		in.ServiceID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	offers, err := uc.repo.ProfessionalOffersService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, httperr.ErrBusiness("service_not_offered")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5️⃣ Working hours + almoço
	// --------------------------------------------------
	ok, err := uc.repo.IsWithinWorkingHours(
		ctx,
		in.ProfessionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 6️⃣ Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Conflito de horário (revalidação no commit)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.ProfessionalID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Criação do agendamento (status centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicRef:      uuid.NewString(),
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusScheduled),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   nil,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
