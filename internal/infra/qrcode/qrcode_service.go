// Package qrcode renders booking check-in passes as QR code images.
package qrcode

import (
	"encoding/json"
	"strings"

	"stayscape/config"
	"stayscape/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	passTypeCheckIn = "check_in"
	defaultSize     = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

// parseRecoveryLevel accepts the single-letter codes or the level names.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckInQR renders a PNG encoding the booking and property IDs.
func (s *qrcodeService) GenerateCheckInQR(bookingID, propertyID int64) ([]byte, error) {
	jsonData, err := json.Marshal(service.CheckInPass{
		BookingID:  bookingID,
		PropertyID: propertyID,
		Type:       passTypeCheckIn,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInQR decodes and checks a scanned check-in payload.
func (s *qrcodeService) ParseCheckInQR(qrData string) (*service.CheckInPass, error) {
	var pass service.CheckInPass
	if err := json.Unmarshal([]byte(qrData), &pass); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if pass.Type != passTypeCheckIn {
		return nil, errors.Errorf("invalid QR code type: %s", pass.Type)
	}
	if pass.BookingID <= 0 || pass.PropertyID <= 0 {
		return nil, errors.New("QR code is missing booking or property id")
	}

	return &pass, nil
}
