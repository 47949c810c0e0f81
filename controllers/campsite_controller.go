package controllers

import (
	"errors"
	"strconv"

	"gocamp/dto"
	errs "gocamp/errors"
	"gocamp/models"
	"gocamp/repository"
	"gocamp/response"
	"gocamp/validator"

	"github.com/gin-gonic/gin"
)

// CampsiteController surface mỏng cho chủ campsite: đọc campsite và
// quản lý unavailability windows. Catalog đầy đủ do service khác sở hữu.
type CampsiteController struct {
	campsites repository.CampsiteRepo
}

func NewCampsiteController(campsites repository.CampsiteRepo) *CampsiteController {
	return &CampsiteController{campsites: campsites}
}

// GetCampsiteDetail GET /api/v1/campsite/:id
func (ctl *CampsiteController) GetCampsiteDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	campsite, err := ctl.campsites.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, campsite)
}

// GetUnavailability GET /api/v1/unavailability?campsiteId=
func (ctl *CampsiteController) GetUnavailability(c *gin.Context) {
	campsiteID, err := strconv.ParseUint(c.Query("campsiteId"), 10, 64)
	if err != nil || campsiteID == 0 {
		response.BadRequest(c, "campsiteId không hợp lệ")
		return
	}

	windows, err := ctl.campsites.ListWindows(c.Request.Context(), uint(campsiteID))
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, windows)
}

// CreateUnavailability POST /api/v1/unavailability. Chỉ chủ campsite
// được khóa lịch của mình
func (ctl *CampsiteController) CreateUnavailability(c *gin.Context) {
	userID := c.GetUint("userID")

	var request dto.CreateWindowRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	start, err := validator.ParseBookingDate(request.FromDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng fromDate")
		return
	}
	end, err := validator.ParseBookingDate(request.ToDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng toDate")
		return
	}

	campsite, err := ctl.campsites.FindByID(c.Request.Context(), request.CampsiteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	if campsite.OwnerID != userID {
		response.Forbidden(c, "Chỉ chủ campsite được khóa lịch")
		return
	}

	window := &models.UnavailabilityWindow{
		CampsiteID: request.CampsiteID,
		StartDate:  start,
		EndDate:    end,
		Reason:     request.Reason,
	}
	if err := validator.ValidateWindow(window); err != nil {
		appErr := errs.GetAppError(err)
		response.BadRequest(c, appErr.Message)
		return
	}

	if err := ctl.campsites.CreateWindow(c.Request.Context(), window); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, window)
}

// DeleteUnavailability DELETE /api/v1/unavailability/:id
func (ctl *CampsiteController) DeleteUnavailability(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	window, err := ctl.campsites.FindWindowByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	campsite, err := ctl.campsites.FindByID(c.Request.Context(), window.CampsiteID)
	if err != nil {
		response.ServerError(c)
		return
	}
	if campsite.OwnerID != userID {
		response.Forbidden(c, "Chỉ chủ campsite được mở khóa lịch")
		return
	}

	if err := ctl.campsites.DeleteWindow(c.Request.Context(), uint(id)); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
