package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharpcuts/booking-api/internal/audit"
	"github.com/sharpcuts/booking-api/internal/domain/schedule"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/media"
	"github.com/sharpcuts/booking-api/internal/middleware"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, uploader *media.Uploader, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	JobTitle        string `json:"job_title"`
	InstagramHandle string `json:"instagram_handle"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	JobTitle        *string `json:"job_title,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`

	WorkingDays  *[]string `json:"working_days,omitempty"`
	WorkingStart *string   `json:"working_start,omitempty"`
	WorkingEnd   *string   `json:"working_end,omitempty"`
}

var validWeekdays = map[string]bool{
	"sunday":    true,
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
}

// ======================================================
// LIST / CREATE (owner)
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

func (h *BarberHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_taken", "A barber with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create barber.")
		return
	}

	barber := models.Barber{
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hashed),
		Role:            middleware.RoleStandard,
		JobTitle:        req.JobTitle,
		InstagramHandle: req.InstagramHandle,
		WorkingDays:     []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		WorkingStart:    "09:00",
		WorkingEnd:      "17:00",
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarberID: &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
		Metadata: map[string]any{"email": barber.Email},
	})

	c.JSON(http.StatusCreated, gin.H{"barber": barber})
}

// ======================================================
// UPDATE PROFILE (self)
// ======================================================

// UpdateProfile lets a barber edit their own card and working schedule.
// Schedule edits only apply to availability computed after the save; existing
// bookings are untouched.
func (h *BarberHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, userID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	if req.Name != nil {
		barber.Name = strings.TrimSpace(*req.Name)
	}
	if req.JobTitle != nil {
		barber.JobTitle = *req.JobTitle
	}
	if req.InstagramHandle != nil {
		barber.InstagramHandle = strings.TrimPrefix(*req.InstagramHandle, "@")
	}

	if req.WorkingDays != nil {
		days := make([]string, 0, len(*req.WorkingDays))
		for _, d := range *req.WorkingDays {
			d = strings.ToLower(strings.TrimSpace(d))
			if !validWeekdays[d] {
				httperr.BadRequest(c, "invalid_weekday", "Unknown weekday: "+d)
				return
			}
			days = append(days, d)
		}
		barber.WorkingDays = days
	}

	if req.WorkingStart != nil || req.WorkingEnd != nil {
		start := barber.WorkingStart
		end := barber.WorkingEnd
		if req.WorkingStart != nil {
			start = *req.WorkingStart
		}
		if req.WorkingEnd != nil {
			end = *req.WorkingEnd
		}

		startMin, ok := schedule.ParseClock(start)
		if !ok {
			httperr.BadRequest(c, "invalid_time", "Invalid working start time.")
			return
		}
		endMin, ok := schedule.ParseClock(end)
		if !ok {
			httperr.BadRequest(c, "invalid_time", "Invalid working end time.")
			return
		}
		if startMin >= endMin {
			httperr.BadRequest(c, "invalid_hours", "Working start must be before working end.")
			return
		}

		barber.WorkingStart = start
		barber.WorkingEnd = end
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not save profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarberID: &userID,
		Action:   "profile_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
		Metadata: map[string]any{
			"working_days":  barber.WorkingDays,
			"working_start": barber.WorkingStart,
			"working_end":   barber.WorkingEnd,
		},
	})

	c.JSON(http.StatusOK, gin.H{"barber": barber})
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

const maxPhotoBytes = 5 << 20

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media_storage_not_configured"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo must be under 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the upload.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadProfilePhoto(c.Request.Context(), userID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Could not process the photo.")
		return
	}

	if err := h.db.Model(&models.Barber{}).
		Where("id = ?", userID).
		Update("image_url", url).Error; err != nil {

		httperr.Internal(c, "failed_to_update_barber", "Could not save the photo URL.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarberID: &userID,
		Action:   "photo_updated",
		Entity:   "barber",
		EntityID: &userID,
	})

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
