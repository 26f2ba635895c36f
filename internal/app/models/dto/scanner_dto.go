package dto

// StartScanRequest opens a scan session for a kiosk device
type StartScanRequest struct {
	DeviceID string `json:"deviceId" binding:"required" example:"kiosk-entrance-1"`
}

// DecodeScanRequest reports a decoded code for an active session
type DecodeScanRequest struct {
	Text string `json:"text" binding:"required" example:"STU-2025-041"`
}

// FailScanRequest reports a camera failure for an active session
type FailScanRequest struct {
	Reason string `json:"reason" binding:"required" example:"camera permission denied"`
}
