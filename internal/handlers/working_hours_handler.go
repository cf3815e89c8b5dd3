package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alessandrotostes/aen-agendamentos/internal/domain/schedule"
	"github.com/alessandrotostes/aen-agendamentos/internal/middleware"
	"github.com/alessandrotostes/aen-agendamentos/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// garante que o profissional pertence ao salão do token
func (h *WorkingHoursHandler) professionalForSalon(c *gin.Context) (*models.Professional, bool) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&pro).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_professional"})
		return nil, false
	}

	return &pro, true
}

// valida um dia ativo: HH:mm bem formado e início antes do fim
func validWorkingDay(d WorkingDayConfig) bool {
	start, err := schedule.ParseClock(d.StartTime)
	if err != nil {
		return false
	}
	end, err := schedule.ParseClock(d.EndTime)
	if err != nil {
		return false
	}
	if start >= end {
		return false
	}

	if d.LunchStart != "" || d.LunchEnd != "" {
		ls, err := schedule.ParseClock(d.LunchStart)
		if err != nil {
			return false
		}
		le, err := schedule.ParseClock(d.LunchEnd)
		if err != nil {
			return false
		}
		if ls >= le {
			return false
		}
	}

	return true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	pro, ok := h.professionalForSalon(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("professional_id = ?", pro.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	pro, ok := h.professionalForSalon(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if d.Active && !validWorkingDay(d) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_working_day",
				"weekday": d.Weekday,
			})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", pro.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				ProfessionalID: pro.ID,
				Weekday:        d.Weekday,
				Active:         d.Active,
				StartTime:      d.StartTime,
				EndTime:        d.EndTime,
				LunchStart:     d.LunchStart,
				LunchEnd:       d.LunchEnd,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
