package daterange

import (
	"testing"
	"time"
)

func TestDayEndingAt(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "mid-month",
			now:       time.Date(2024, 3, 2, 10, 30, 0, 0, jst),
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-02",
		},
		{
			name:      "year boundary",
			now:       time.Date(2024, 1, 1, 8, 0, 0, 0, jst),
			wantStart: "2023-12-31",
			wantEnd:   "2024-01-01",
		},
		{
			name:      "month boundary",
			now:       time.Date(2024, 5, 1, 0, 0, 1, 0, jst),
			wantStart: "2024-04-30",
			wantEnd:   "2024-05-01",
		},
		{
			name:      "leap day",
			now:       time.Date(2024, 3, 1, 23, 59, 59, 0, jst),
			wantStart: "2024-02-29",
			wantEnd:   "2024-03-01",
		},
		{
			name:      "just before midnight",
			now:       time.Date(2024, 7, 15, 23, 59, 59, 0, time.UTC),
			wantStart: "2024-07-14",
			wantEnd:   "2024-07-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DayEndingAt(tt.now)

			if got := r.StartString(); got != tt.wantStart {
				t.Errorf("StartString() = %q, want %q", got, tt.wantStart)
			}
			if got := r.EndString(); got != tt.wantEnd {
				t.Errorf("EndString() = %q, want %q", got, tt.wantEnd)
			}

			// End must be exactly one calendar day after Start
			if got := r.Start.AddDate(0, 0, 1); !got.Equal(r.End) {
				t.Errorf("Start + 1 day = %v, want %v", got, r.End)
			}
		})
	}
}

func TestDayEndingAtKeepsLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	r := DayEndingAt(time.Date(2024, 3, 2, 10, 0, 0, 0, jst))

	if r.Start.Location() != jst {
		t.Errorf("Start location = %v, want %v", r.Start.Location(), jst)
	}
	if r.End.Location() != jst {
		t.Errorf("End location = %v, want %v", r.End.Location(), jst)
	}
	if h, m, s := r.End.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("End clock = %02d:%02d:%02d, want midnight", h, m, s)
	}
}
