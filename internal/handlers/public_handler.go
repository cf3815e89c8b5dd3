package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/alessandrotostes/aen-agendamentos/internal/domain/appointment"
	"github.com/alessandrotostes/aen-agendamentos/internal/httperr"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
	"github.com/alessandrotostes/aen-agendamentos/internal/timezone"
	"github.com/alessandrotostes/aen-agendamentos/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	createUC       *appointment.CreateAppointment
	availabilityUC *appointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *appointment.CreateAppointment,
	availabilityUC *appointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}

	return &salon, true
}

// sem professional_id explícito, o agendamento cai no primeiro
// profissional ativo que oferece o serviço
func (h *PublicHandler) resolveProfessional(
	salonID uint,
	serviceID uint,
	requested uint,
) (*models.Professional, error) {

	q := h.db.
		Joins("JOIN professional_services ps ON ps.professional_id = professionals.id").
		Where("professionals.salon_id = ? AND professionals.active = true AND ps.service_id = ?",
			salonID, serviceID)

	if requested != 0 {
		q = q.Where("professionals.id = ?", requested)
	}

	var pro models.Professional
	if err := q.Order("professionals.id ASC").First(&pro).Error; err != nil {
		return nil, err
	}

	return &pro, nil
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// PROFESSIONALS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	q := h.db.
		Where("professionals.salon_id = ? AND professionals.active = true", salon.ID)

	if serviceIDStr := c.Query("service_id"); serviceIDStr != "" {
		serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}
		q = q.
			Joins("JOIN professional_services ps ON ps.professional_id = professionals.id").
			Where("ps.service_id = ?", uint(serviceID))
	}

	var pros []models.Professional
	if err := q.Order("professionals.id ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":         gin.H{"id": salon.ID, "name": salon.Name, "slug": salon.Slug},
		"professionals": pros,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailabilityForClient(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var requested uint
	if raw := c.Query("professional_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
			return
		}
		requested = uint(v)
	}

	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	pro, err := h.resolveProfessional(salon.ID, uint(serviceID), requested)
	if err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:        salon.ID,
			ProfessionalID: pro.ID,
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
			return
		}
		if httperr.IsBusiness(err, "service_not_offered") {
			httperr.BadRequest(c, "service_not_offered", "Profissional não realiza esse serviço.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"professional_id": pro.ID,
		"slots":           slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (PUBLIC → REUSA PRIVATE)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro, err := h.resolveProfessional(salon.ID, req.ServiceID, req.ProfessionalID)
	if err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			SalonID:        salon.ID,
			ProfessionalID: pro.ID,
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

////////////////////////////////////////////////////////
// LOOKUP POR REFERÊNCIA PÚBLICA
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAppointmentByRef(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	ref := c.Param("ref")

	var ap models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Professional").
		Where("salon_id = ? AND public_ref = ?", salon.ID, ref).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_ref":   ap.PublicRef,
		"status":       ap.Status,
		"start_time":   ap.StartTime,
		"end_time":     ap.EndTime,
		"service":      gin.H{"id": ap.Service.ID, "name": ap.Service.Name},
		"professional": gin.H{"id": ap.Professional.ID, "name": ap.Professional.Name},
	})
}
