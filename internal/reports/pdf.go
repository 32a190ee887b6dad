package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"portalsync/internal/domain/attendance"
)

// AttendancePDF renders the per-day attendance series to a PDF in dir and
// returns the file path. Days without data are printed as "no data" rather
// than 0%.
func AttendancePDF(dir string, staffCount int, series []attendance.DayRate) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("attendance-%s.pdf", time.Now().UTC().Format("2006-01-02")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total staff: %d", staffCount))
	pdf.Ln(10)

	for _, day := range series {
		label := "no data"
		if day.HasData {
			label = fmt.Sprintf("%.1f%%", day.Rate)
		}
		pdf.Cell(0, 8, fmt.Sprintf("%s  %s", day.Date.Format("2006-01-02"), label))
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
