package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/alessandrotostes/aen-agendamentos/internal/domain/appointment"
	"github.com/alessandrotostes/aen-agendamentos/internal/httperr"
	"github.com/alessandrotostes/aen-agendamentos/internal/httpresp"
	"github.com/alessandrotostes/aen-agendamentos/internal/middleware"
	"github.com/alessandrotostes/aen-agendamentos/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *appointment.CreateAppointment
	completeUC     *appointment.CompleteAppointment
	cancelUC       *appointment.CancelAppointment
	listByDateUC   *appointment.ListAppointmentsByDate
	listByMonthUC  *appointment.ListAppointmentsByMonth
	availabilityUC *appointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	completeUC *appointment.CompleteAppointment,
	cancelUC *appointment.CancelAppointment,
	listByDateUC *appointment.ListAppointmentsByDate,
	listByMonthUC *appointment.ListAppointmentsByMonth,
	availabilityUC *appointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		completeUC:     completeUC,
		cancelUC:       cancelUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

// traduz erros de negócio do use case em respostas HTTP
func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")

	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário inválido.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")

	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")

	case httperr.IsBusiness(err, "service_not_offered"):
		httperr.BadRequest(c, "service_not_offered", "Profissional não realiza esse serviço.")

	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")

	case httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err):
		httperr.BadRequest(c, "time_conflict", "Conflito de horário.")

	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			SalonID:        salonID,
			ProfessionalID: req.ProfessionalID,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ClientEmail:    req.ClientEmail,
			ServiceID:      req.ServiceID,
			Date:           req.Date,
			Time:           req.Time,
			Notes:          req.Notes,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// AVAILABILITY (AGENDA DO PROFISSIONAL)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	professionalIDStr := c.Query("professional_id")

	if dateStr == "" || serviceIDStr == "" || professionalIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, serviço e profissional obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	professionalID, err := strconv.ParseUint(professionalIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:        salonID,
			ProfessionalID: uint(professionalID),
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, "Parâmetros inválidos.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	professionalID, ok := parseProfessionalID(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(
		c.Request.Context(),
		salonID,
		professionalID,
		date,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	professionalID, ok := parseProfessionalID(c)
	if !ok {
		return
	}

	out, err := h.listByMonthUC.Execute(
		c.Request.Context(),
		salonID,
		professionalID,
		year,
		month,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

func parseProfessionalID(c *gin.Context) (uint, bool) {
	raw := c.Query("professional_id")
	if raw == "" {
		httperr.BadRequest(c, "missing_professional_id", "Profissional obrigatório.")
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return 0, false
	}

	return uint(id), true
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), salonID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), salonID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser concluído.")
			return
		}
		httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
