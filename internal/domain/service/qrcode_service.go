package service

// QRCodeService defines the interface for listing share QR codes.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code embedding a share payload for
	// the listing.
	GenerateListingQR(listingID int64, name string) ([]byte, error)

	// ParseListingQR parses share payload data and returns the listing ID.
	ParseListingQR(qrData string) (int64, error)
}
