package services

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"gocamp/validator"
)

// SendBookingEmail gửi email xác nhận đặt chỗ thành công.
// Gửi thất bại chỉ được log ở caller, không làm fail booking.
func SendBookingEmail(email string, bookingID uint, totalPrice float64, startDate, endDate time.Time) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	to := []string{email}
	subject := "Subject: Đặt chỗ cắm trại thành công\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt chỗ thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Bạn đã đặt chỗ cắm trại thành công.</p>
		<ul>
			<li>Mã booking: <strong>%d</strong></li>
			<li>Ngày nhận chỗ: <strong>%s</strong></li>
			<li>Ngày trả chỗ: <strong>%s</strong></li>
			<li>Tổng giá: <strong>%.2f</strong></li>
		</ul>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingID,
		startDate.Format(validator.BookingDateLayout),
		endDate.Format(validator.BookingDateLayout),
		totalPrice)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
