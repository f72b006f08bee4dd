package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcuts/booking-api/internal/cache"
	"github.com/sharpcuts/booking-api/internal/config"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/dto"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/httpresp"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/timezone"
	ucBooking "github.com/sharpcuts/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	repo     domain.Repository
	cache    *cache.Availability
	createUC *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	repo domain.Repository,
	availCache *cache.Availability,
	createUC *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		cfg:      cfg,
		repo:     repo,
		cache:    availCache,
		createUC: createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	SMSReminder   bool `json:"sms_reminder"`
	EmailReminder bool `json:"email_reminder"`
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	out := make([]dto.PublicBarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.PublicBarberDTO{
			ID:              b.ID,
			Name:            b.Name,
			WorkingDays:     b.WorkingDays,
			WorkingStart:    b.WorkingStart,
			WorkingEnd:      b.WorkingEnd,
			ImageURL:        b.ImageURL,
			InstagramHandle: b.InstagramHandle,
			JobTitle:        b.JobTitle,
		})
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

// ListServices returns the active catalog. Every barber offers every active
// service; per-barber menus are deliberately not modeled.
func (h *PublicHandler) ListServices(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	serviceIDStr := c.Query("service_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || serviceIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barber, service and date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	today := timezone.TodayIn(h.cfg.ShopTimezone)
	ctx := c.Request.Context()

	if slots, ok := h.cache.Get(ctx, uint(barberID), uint(serviceID), dateStr); ok {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	snap, err := h.repo.LoadSnapshot(ctx, today)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	slots := snap.AvailableSlots(uint(barberID), uint(serviceID), dateStr, today)
	h.cache.Set(ctx, uint(barberID), uint(serviceID), dateStr, slots)

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	bk, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarberID:      req.BarberID,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			SMSReminder:   req.SMSReminder,
			EmailReminder: req.EmailReminder,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}
