package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/alessandrotostes/aen-agendamentos/internal/domain/appointment"
	"github.com/alessandrotostes/aen-agendamentos/internal/domain/schedule"
	"github.com/alessandrotostes/aen-agendamentos/internal/httperr"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	salon        *models.Salon
	service      *models.Service
	professional *models.Professional
	offers       bool
	workingHours []models.WorkingHours
	appointments []models.Appointment
}

func (f *fakeRepo) GetSalonByID(_ context.Context, _ uint) (*models.Salon, error) {
	if f.salon == nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetService(_ context.Context, _, _ uint) (*models.Service, error) {
	if f.service == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return f.service, nil
}

func (f *fakeRepo) GetProfessional(_ context.Context, _, _ uint) (*models.Professional, error) {
	if f.professional == nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return f.professional, nil
}

func (f *fakeRepo) ProfessionalOffersService(_ context.Context, _, _ uint) (bool, error) {
	return f.offers, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, _ uint, start, end time.Time) error {
	for _, ap := range f.appointments {
		if start.Before(ap.EndTime) && end.After(ap.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointmentForSalon(_ context.Context, _, _ uint) (*models.Appointment, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListWorkingHours(_ context.Context, _ uint) ([]models.WorkingHours, error) {
	return f.workingHours, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) IsWithinWorkingHours(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
	return true, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, id uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointmentsForDay(ctx, id, start, end)
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

// segunda-feira distante no futuro: o corte de "hoje" não se aplica
func segundaFutura(t *testing.T) time.Time {
	return time.Date(2030, time.March, 4, 0, 0, 0, 0, saoPaulo(t))
}

func repoComAgendaAberta(t *testing.T) *fakeRepo {
	return &fakeRepo{
		salon:        &models.Salon{ID: 1, Timezone: "America/Sao_Paulo"},
		service:      &models.Service{ID: 5, SalonID: 1, DurationMin: 30, Active: true},
		professional: &models.Professional{ID: 9, SalonID: 1, Active: true},
		offers:       true,
		workingHours: []models.WorkingHours{
			{
				ProfessionalID: 9,
				Weekday:        int(time.Monday),
				Active:         true,
				StartTime:      "09:00",
				EndTime:        "18:00",
				LunchStart:     "12:00",
				LunchEnd:       "13:00",
			},
		},
	}
}

func starts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

// ======================================================
// TESTS
// ======================================================

func TestGetAvailability_DiaAbertoComAlmoco(t *testing.T) {
	repo := repoComAgendaAberta(t)
	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           segundaFutura(t),
	})

	require.NoError(t, err)
	require.NotEmpty(t, slots)

	got := starts(slots)

	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "17:30", got[len(got)-1])

	// almoço 12:00–13:00 bloqueia qualquer início que invada a pausa
	assert.NotContains(t, got, "11:45")
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "12:30")
	assert.NotContains(t, got, "12:45")
	assert.Contains(t, got, "11:30") // termina 12:00, encosta e cabe
	assert.Contains(t, got, "13:00") // começa no fim da pausa

	// fim de cada slot = início + duração do serviço
	assert.Equal(t, "09:30", slots[0].End)
}

func TestGetAvailability_ComReservaExistente(t *testing.T) {
	repo := repoComAgendaAberta(t)
	loc := saoPaulo(t)
	day := segundaFutura(t)

	repo.appointments = []models.Appointment{{
		ProfessionalID: 9,
		Status:         "scheduled",
		StartTime:      time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, loc),
		EndTime:        time.Date(day.Year(), day.Month(), day.Day(), 10, 30, 0, 0, loc),
	}}

	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           day,
	})

	require.NoError(t, err)
	got := starts(slots)

	assert.NotContains(t, got, "09:45")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:15")
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "10:30")
}

func TestGetAvailability_DiaFechado(t *testing.T) {
	repo := repoComAgendaAberta(t)
	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	// 2030-03-05 é terça — sem linha na grade semanal
	terca := time.Date(2030, time.March, 5, 0, 0, 0, 0, saoPaulo(t))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           terca,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_GradeInativa(t *testing.T) {
	repo := repoComAgendaAberta(t)
	repo.workingHours[0].Active = false

	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           segundaFutura(t),
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ServicoNaoOferecido(t *testing.T) {
	repo := repoComAgendaAberta(t)
	repo.offers = false

	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           segundaFutura(t),
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_offered"))
}

func TestGetAvailability_ServicoInexistente(t *testing.T) {
	repo := repoComAgendaAberta(t)
	repo.service = nil

	uc := NewGetAvailability(repo, schedule.NewEngine(15))

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:        1,
		ProfessionalID: 9,
		ServiceID:      5,
		Date:           segundaFutura(t),
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
