package service

// QRCodeService renders linking codes as scannable QR images.
type QRCodeService interface {
	// GenerateLinkCodeQR returns a PNG image encoding the linking code.
	GenerateLinkCodeQR(code string) ([]byte, error)
}
