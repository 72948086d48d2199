package domain

import "testing"

func TestDailyRecord_Weekday(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{"monday", "2024-03-04", 1},
		{"wednesday", "2024-03-06", 3},
		{"saturday", "2024-03-09", 6},
		{"sunday maps to 7", "2024-03-10", 7},
		{"unparseable date", "not-a-date", 0},
		{"empty date", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DailyRecord{Date: tt.date}
			if got := r.Weekday(); got != tt.want {
				t.Errorf("Weekday() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyRecord_ToResponse(t *testing.T) {
	r := DailyRecord{Date: "2024-03-15", WaterLiters: 2.5}

	resp := r.ToResponse()

	if resp.Date != "2024-03-15" || resp.WaterLiters != 2.5 {
		t.Errorf("ToResponse() = %+v", resp)
	}
	if resp.FoodEntries == nil {
		t.Error("FoodEntries should serialize as an empty array, not null")
	}
}
