package reporting

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDailySummaryQueriesFilterOnCurrentDate(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"new patients", newPatientsTodayQuery, []string{"FROM patients", "created_at::date = CURRENT_DATE"}},
		{"appointments", appointmentsTodayQuery, []string{"FROM appointments", "appointment_date = CURRENT_DATE"}},
		{"revenue", revenueTodayQuery, []string{"FROM billing", "status = 'Paid'", "billing_date::date = CURRENT_DATE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, frag := range tc.want {
				if !strings.Contains(tc.query, frag) {
					t.Errorf("query %q missing %q", tc.query, frag)
				}
			}
		})
	}
}

func TestRevenueQueryCoalescesEmptyDays(t *testing.T) {
	if !strings.Contains(revenueTodayQuery, "COALESCE(SUM(amount), 0)") {
		t.Errorf("revenue must be 0, not NULL, when no bills settled today: %q", revenueTodayQuery)
	}
}

func TestDailySummaryJSONShape(t *testing.T) {
	b, err := json.Marshal(DailySummary{
		Date:              "2024-01-02",
		NewPatients:       1,
		TotalAppointments: 1,
		TotalRevenue:      100.00,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"date", "newPatients", "totalAppointments", "totalRevenue"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
	if m["totalRevenue"].(float64) != 100.00 {
		t.Errorf("totalRevenue = %v", m["totalRevenue"])
	}
}
