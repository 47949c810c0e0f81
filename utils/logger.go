package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

var reconcileLogger *log.Logger

func init() {
	// Log đối soát thủ công ghi ra file riêng; nếu không tạo được file
	// thì rơi về stderr thay vì dừng chương trình
	if err := os.MkdirAll("logs", 0755); err != nil {
		reconcileLogger = log.New(os.Stderr, "RECONCILE: ", log.Ldate|log.Ltime|log.Lshortfile)
		return
	}

	timestamp := time.Now().Format("2006-01-02")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/reconcile-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		reconcileLogger = log.New(os.Stderr, "RECONCILE: ", log.Ldate|log.Ltime|log.Lshortfile)
		return
	}

	reconcileLogger = log.New(logFile, "RECONCILE: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogReconcile ghi lại các sự cố cần đối soát thủ công
// (refund thất bại, row sweeper bị bỏ qua, ...)
func LogReconcile(format string, v ...interface{}) {
	reconcileLogger.Printf(format, v...)
}
