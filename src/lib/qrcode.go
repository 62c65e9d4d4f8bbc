package lib

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/yeqown/go-qrcode"
)

// SaveBookingQRCode renders a QR image of the booking number for drop-off
// verification and returns the file path.
func SaveBookingQRCode(bookingNumber string) (string, error) {
	qrc, err := qrcode.New(bookingNumber)
	if err != nil {
		return "", err
	}
	dir := os.Getenv("QRC_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	filepath := path.Join(dir, fmt.Sprintf("%s.jpeg", bookingNumber))
	if err = qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	return filepath, nil
}
