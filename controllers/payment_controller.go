package controllers

import (
	"io"

	"gocamp/dto"
	"gocamp/errors"
	"gocamp/response"
	"gocamp/services"

	"github.com/gin-gonic/gin"
)

// PaymentController nhận webhook từ payment gateway và tạo intent
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateIntent POST /api/v1/payment/intent. Tạo intent trước khi đặt booking.
// Lỗi gateway trả 502 để client retry.
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var request dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	intent, err := ctl.payments.CreateIntent(c.Request.Context(), request.Amount, request.Currency)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, intent)
}

// HandleWebhook POST /api/v1/payment/webhook. Entry point độc lập cho event
// của gateway, không phụ thuộc vào flow tạo booking. Chữ ký sai trả 400
// (rejection ack) và không đổi trạng thái gì.
func (ctl *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Không đọc được payload")
		return
	}
	signature := c.GetHeader("X-Gateway-Signature")

	if err := ctl.payments.HandleEvent(c.Request.Context(), payload, signature); err != nil {
		if errors.HasCode(err, errors.ErrCodeInvalidSignature) ||
			errors.HasCode(err, errors.ErrCodeInvalidFormat) ||
			errors.HasCode(err, errors.ErrCodeRequiredField) ||
			errors.HasCode(err, errors.ErrCodeValidation) {
			response.BadRequest(c, "Event bị từ chối")
			return
		}
		// Lỗi storage: trả 500 để gateway deliver lại sau
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"received": true})
}
