package serverutils

import "time"

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrResponse struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func ErrorResponse(code int, message string) ErrResponse {
	return ErrResponse{
		Success:   false,
		Code:      code,
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
