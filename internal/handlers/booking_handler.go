package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcuts/booking-api/internal/config"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/dto"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/middleware"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/timezone"
	ucBooking "github.com/sharpcuts/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db   *gorm.DB
	cfg  *config.Config
	repo domain.Repository

	rescheduleUC *ucBooking.RescheduleBooking
	cancelUC     *ucBooking.CancelBooking
	completeUC   *ucBooking.CompleteBooking
	deleteUC     *ucBooking.DeleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	cfg *config.Config,
	repo domain.Repository,
	rescheduleUC *ucBooking.RescheduleBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		cfg:          cfg,
		repo:         repo,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBookingRequest struct {
	BarberID  *uint   `json:"barber_id,omitempty"`
	ServiceID *uint   `json:"service_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
}

// ======================================================
// LIST
// ======================================================

// ListByDate returns bookings for one date. Standard barbers see their own
// diary; the owner sees the whole shop, optionally narrowed by barber_id.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	q := h.db.
		Preload("Barber").
		Preload("Service").
		Where("date = ?", dateStr)

	if role == middleware.RoleOwner {
		if barberIDStr := c.Query("barber_id"); barberIDStr != "" {
			barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
				return
			}
			q = q.Where("barber_id = ?", barberID)
		}
	} else {
		q = q.Where("barber_id = ?", userID)
	}

	var bookings []models.Booking
	if err := q.Order("time ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            bk.ID,
			Reference:     bk.Reference,
			Date:          bk.Date,
			Time:          bk.Time,
			Status:        bk.Status,
			CustomerName:  bk.CustomerName,
			CustomerPhone: bk.CustomerPhone,
			BarberName:    bk.Barber.Name,
			ServiceName:   bk.Service.Name,
			Price:         bk.Service.Price,
		})
	}

	c.JSON(200, gin.H{"date": dateStr, "bookings": out})
}

// ListByRange returns bookings between two dates inclusive, for the admin
// calendar view.
func (h *BookingHandler) ListByRange(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "Both from and to are required.")
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Invalid from date.")
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Invalid to date.")
		return
	}
	if to.Before(from) {
		httperr.BadRequest(c, "invalid_range", "to must not be before from.")
		return
	}

	q := h.db.
		Preload("Barber").
		Preload("Service").
		Where("date >= ? AND date <= ?", fromStr, toStr)

	if role != middleware.RoleOwner {
		q = q.Where("barber_id = ?", userID)
	}

	var bookings []models.Booking
	if err := q.Order("date ASC, time ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	c.JSON(200, gin.H{"from": fromStr, "to": toStr, "bookings": bookings})
}

// ======================================================
// STATS
// ======================================================

// statsFloorDate keeps completed history in the stats snapshot; availability
// snapshots only need today onward, the dashboard needs everything.
const statsFloorDate = "0001-01-01"

func (h *BookingHandler) Stats(c *gin.Context) {
	snap, err := h.repo.LoadSnapshot(c.Request.Context(), statsFloorDate)
	if err != nil {
		httperr.Internal(c, "stats_failed", "Could not compute stats.")
		return
	}

	today := timezone.TodayIn(h.cfg.ShopTimezone)
	c.JSON(200, snap.Stats(today))
}

// ======================================================
// UPDATE (RESCHEDULE)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	bk, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		ucBooking.RescheduleBookingInput{
			BookingID: uint(id),
			ActorID:   userID,
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(200, bk)
}

// ======================================================
// CANCEL / COMPLETE / DELETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	bk, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(200, bk)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	bk, err := h.completeUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(200, bk)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}
