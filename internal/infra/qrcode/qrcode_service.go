// Package qrcode renders share codes for listings.
package qrcode

import (
	"encoding/json"
	"fmt"

	"antigaspi/config"
	"antigaspi/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ListingID int64  `json:"listing_id"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url,omitempty"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch cfg.QRCode.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 cfg.QRCode.Size,
		errorCorrectionLevel: level,
		baseURL:              cfg.QRCode.BaseURL,
	}
}

// GenerateListingQR generates a share QR code for a listing.
func (s *qrcodeService) GenerateListingQR(listingID int64, name string) ([]byte, error) {
	data := QRCodeData{
		ListingID: listingID,
		Name:      name,
		Type:      "listing",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/%d", s.baseURL, listingID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseListingQR parses share payload data and returns the listing ID.
func (s *qrcodeService) ParseListingQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "listing" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ListingID == 0 {
		return 0, fmt.Errorf("missing listing id in QR code data")
	}

	return data.ListingID, nil
}
