package service

// CheckInPass is the payload encoded in a booking check-in QR code.
type CheckInPass struct {
	BookingID  int64  `json:"booking_id"`
	PropertyID int64  `json:"property_id"`
	Type       string `json:"type"`
}

// QRCodeService defines the interface for check-in QR code generation and parsing.
type QRCodeService interface {
	// GenerateCheckInQR renders a PNG QR code for a booking.
	GenerateCheckInQR(bookingID, propertyID int64) ([]byte, error)

	// ParseCheckInQR decodes the JSON payload scanned from a check-in QR code.
	ParseCheckInQR(qrData string) (*CheckInPass, error)
}
