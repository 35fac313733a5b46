package wizard

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"seven18/models"

	qrcode "github.com/skip2/go-qrcode"
)

// IssuePass builds the digital check-in pass for a paid booking. The
// QR code encodes the pass details as JSON and is returned as a PNG
// data URL for direct embedding.
func IssuePass(form models.BookingFormData) (*models.DigitalPass, error) {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	bookingID := "S18-" + millis[len(millis)-6:]

	pkgName := ""
	if form.SelectedPackage != nil {
		pkgName = form.SelectedPackage.Name
	}

	pass := &models.DigitalPass{
		BookingID: bookingID,
		Name:      form.Name,
		Event:     form.EventType,
		Date:      form.DateLong(),
		Time:      form.TimeSlot,
		Guests:    form.Guests,
		Package:   pkgName,
	}

	payload, err := json.Marshal(pass)
	if err != nil {
		return nil, fmt.Errorf("encode pass payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("render pass qr code: %w", err)
	}

	pass.QRCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return pass, nil
}
