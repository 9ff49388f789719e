// Package receipt renders paystation receipts for a text printer or console.
package receipt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/skip2/go-qrcode"
	"github.com/temoto/paystation/internal/paystation"
)

const timeLayout = "2006-01-02 15:04"

type Options struct {
	Station string
	QR      bool
	// nil means UTC
	Location *time.Location
}

// QRText is machine readable receipt id printed as QR code.
func QRText(r paystation.Receipt, station string) string {
	return fmt.Sprintf("paystation:%s:%d:%d:%d", station, r.Seq(), r.Minutes(), r.Issued().Unix())
}

func Format(w io.Writer, r paystation.Receipt, opt Options) error {
	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "------- PARKING RECEIPT -------\n")
	if opt.Station != "" {
		fmt.Fprintf(bw, "station     %s\n", opt.Station)
	}
	fmt.Fprintf(bw, "number      %d\n", r.Seq())
	fmt.Fprintf(bw, "issued      %s\n", r.Issued().In(loc).Format(timeLayout))
	fmt.Fprintf(bw, "paid        %s\n", r.Amount().FormatCents())
	fmt.Fprintf(bw, "minutes     %d\n", r.Minutes())
	fmt.Fprintf(bw, "valid until %s\n", r.ValidUntil().In(loc).Format(timeLayout))
	if opt.QR {
		qr, err := QRBlock(QRText(r, opt.Station))
		if err != nil {
			return errors.Annotatef(err, "receipt seq=%d", r.Seq())
		}
		bw.WriteString(qr)
	}
	fmt.Fprintf(bw, "-------------------------------\n")
	return errors.Annotate(bw.Flush(), "receipt write")
}

// QRBlock renders QR code as text, two chars per module so it looks square.
func QRBlock(text string) (string, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return "", errors.Annotate(err, "qrcode")
	}
	var b strings.Builder
	for _, row := range qr.Bitmap() {
		for _, black := range row {
			if black {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
