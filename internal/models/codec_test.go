package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAttendanceWireNames(t *testing.T) {
	checkIn := "09:00"
	hours := 7.5
	row := Attendance{
		ID:         "a1",
		UserID:     "u1",
		Date:       "2024-01-01",
		CheckIn:    &checkIn,
		Status:     StatusPresent,
		TotalHours: &hours,
	}

	raw, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"id", "userId", "date", "checkIn", "checkOut", "status", "totalHours"} {
		if _, ok := wire[key]; !ok {
			t.Fatalf("wire payload missing %q: %v", key, wire)
		}
	}
	if wire["checkOut"] != nil {
		t.Fatalf("absent checkOut must render as null, got %v", wire["checkOut"])
	}
}

func TestCodecRoundTrip(t *testing.T) {
	phone := "555-0100"
	salary := 85000.0
	reason := "Sick leave"
	comment := "Get well"

	records := []interface{}{
		&User{
			ID: "u1", Name: "Alice", Email: "alice@hrms.com", Role: RoleAdmin,
			Position: "Manager", Department: "HR", JoinDate: "2022-03-01",
			Phone: &phone, Salary: &salary,
		},
		&User{ID: "u2", Name: "Bob", Email: "bob@hrms.com", Role: RoleEmployee},
		&Leave{
			ID: "l1", UserID: "u1", Type: "Sick", StartDate: "2024-04-01",
			EndDate: "2024-04-03", Reason: &reason, Status: LeaveApproved,
			AdminComment: &comment,
		},
		&Payroll{
			ID: "p1", UserID: "u1", Month: "January", Year: "2024",
			BaseSalary: 5000, Bonuses: 300, Deductions: 150, NetPay: 5150,
			Status: "Paid",
		},
	}

	for _, original := range records {
		raw, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal %T: %v", original, err)
		}

		decoded := reflect.New(reflect.TypeOf(original).Elem()).Interface()
		if err := json.Unmarshal(raw, decoded); err != nil {
			t.Fatalf("unmarshal %T: %v", original, err)
		}

		if !reflect.DeepEqual(original, decoded) {
			t.Fatalf("round trip changed %T:\n  before: %+v\n  after:  %+v", original, original, decoded)
		}
	}
}
