package reports

import (
	"os"
	"testing"
	"time"

	"portalsync/internal/domain/attendance"
)

func TestAttendancePDFWritesFile(t *testing.T) {
	dir := t.TempDir()
	series := []attendance.DayRate{
		{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Rate: 33.3, HasData: true},
		{Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	path, err := AttendancePDF(dir, 3, series)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat pdf: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty pdf")
	}
}
