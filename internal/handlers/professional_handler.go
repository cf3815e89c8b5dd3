package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alessandrotostes/aen-agendamentos/internal/middleware"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	ServiceIDs []uint `json:"service_ids"`
}

type UpdateProfessionalRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	ServiceIDs *[]uint `json:"service_ids,omitempty"`
}

// --------- Helpers ---------

// carrega apenas serviços do próprio salão; ids de fora são ignorados
func (h *ProfessionalHandler) servicesForSalon(salonID uint, ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	err := h.db.
		Where("salon_id = ? AND id IN ?", salonID, ids).
		Find(&services).Error

	return services, err
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var pros []models.Professional
	if err := h.db.
		Preload("Services").
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&pros).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	services, err := h.servicesForSalon(salonID, req.ServiceIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_services"})
		return
	}

	pro := models.Professional{
		SalonID:  salonID,
		Name:     req.Name,
		Phone:    req.Phone,
		Active:   true,
		Services: services,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	c.JSON(http.StatusCreated, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&pro).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_professional"})
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		pro.Name = *req.Name
	}
	if req.Phone != nil {
		pro.Phone = *req.Phone
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_professional"})
		return
	}

	if req.ServiceIDs != nil {
		services, err := h.servicesForSalon(salonID, *req.ServiceIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_services"})
			return
		}

		if err := h.db.Model(&pro).Association("Services").Replace(services); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_services"})
			return
		}
		pro.Services = services
	}

	c.JSON(http.StatusOK, pro)
}
