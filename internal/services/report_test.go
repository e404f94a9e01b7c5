package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"
)

// seedLedger registers the given students and marks the present ones, going
// through the same repositories the reconciler reads from.
func seedLedger(t *testing.T, ledger *mockRegistrationLedger, attRepo *mockAttendanceRepository, eventID string, registered []string, present []string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range registered {
		if _, err := ledger.Register(ctx, id, eventID); err != nil {
			t.Fatalf("seed registration %s: %v", id, err)
		}
	}
	for _, id := range present {
		att := domain.NewAttendance(id, eventID, true, time.Now())
		if err := attRepo.Upsert(ctx, att); err != nil {
			t.Fatalf("seed attendance %s: %v", id, err)
		}
	}
}

func TestReportService_EventPopularityReport(t *testing.T) {
	ctx := context.Background()
	events := map[string]*domain.Event{
		"e1": newTestEvent("e1", 100, 0, true),
		"e2": newTestEvent("e2", 100, 0, true),
		"e3": newTestEvent("e3", 100, 0, true),
	}
	events["e2"].Name = "Hackathon"
	events["e3"].Name = "Career Fair"
	students := map[string]bool{"s1": true, "s2": true, "s3": true, "s4": true}

	ledger := newMockRegistrationLedger(students, events)
	attRepo := &mockAttendanceRepository{}
	fbRepo := &mockFeedbackRepository{}

	// e1: 3 registrations, 2 present, avg rating 4 -> score 9.
	// e2: 1 registration, 1 present, no feedback  -> score 2.
	// e3: nothing at all -> score 0.
	seedLedger(t, ledger, attRepo, "e1", []string{"s1", "s2", "s3"}, []string{"s1", "s2"})
	seedLedger(t, ledger, attRepo, "e2", []string{"s4"}, []string{"s4"})
	for id, rating := range map[string]int{"s1": 3, "s2": 5} {
		fb := domain.NewFeedback(id, "e1", rating, "ok", time.Now())
		if err := fbRepo.Create(ctx, fb); err != nil {
			t.Fatalf("seed feedback %s: %v", id, err)
		}
	}

	svc := NewReportService(&mockEventRepository{events: events, order: []string{"e1", "e2", "e3"}}, ledger, attRepo, fbRepo)
	report, err := svc.EventPopularityReport(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report))
	}

	wantOrder := []string{"e1", "e2", "e3"}
	for i, want := range wantOrder {
		if report[i].EventID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, report[i].EventID)
		}
	}
	if report[0].PopularityScore != 9 {
		t.Errorf("expected score 9 for e1, got %f", report[0].PopularityScore)
	}
	if report[0].RegistrationCount != 3 || report[0].AttendanceCount != 2 {
		t.Errorf("unexpected e1 counts: regs=%d atts=%d", report[0].RegistrationCount, report[0].AttendanceCount)
	}
	if report[0].AverageRating != 4 {
		t.Errorf("expected average rating 4, got %f", report[0].AverageRating)
	}
	if report[2].PopularityScore != 0 {
		t.Errorf("expected score 0 for e3, got %f", report[2].PopularityScore)
	}
}

// TestReportService_PopularityTieKeepsOrder feeds two events with identical
// scores; the sort must not swap them.
func TestReportService_PopularityTieKeepsOrder(t *testing.T) {
	ctx := context.Background()
	events := map[string]*domain.Event{
		"e1": newTestEvent("e1", 100, 0, true),
		"e2": newTestEvent("e2", 100, 0, true),
	}
	students := map[string]bool{"s1": true, "s2": true}
	ledger := newMockRegistrationLedger(students, events)
	attRepo := &mockAttendanceRepository{}
	seedLedger(t, ledger, attRepo, "e1", []string{"s1"}, nil)
	seedLedger(t, ledger, attRepo, "e2", []string{"s2"}, nil)

	svc := NewReportService(&mockEventRepository{events: events, order: []string{"e1", "e2"}}, ledger, attRepo, &mockFeedbackRepository{})
	report, err := svc.EventPopularityReport(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report[0].EventID != "e1" || report[1].EventID != "e2" {
		t.Errorf("tie broke input order: got %s, %s", report[0].EventID, report[1].EventID)
	}
}

// TestReportService_CountsComeFromRows plants a drifted denormalized counter;
// the derived figures must reflect the rows, not the counter.
func TestReportService_CountsComeFromRows(t *testing.T) {
	ctx := context.Background()
	event := newTestEvent("e1", 100, 0, true)
	events := map[string]*domain.Event{"e1": event}
	ledger := newMockRegistrationLedger(map[string]bool{"s1": true, "s2": true}, events)
	attRepo := &mockAttendanceRepository{}
	seedLedger(t, ledger, attRepo, "e1", []string{"s1", "s2"}, []string{"s1"})

	// Drift the counter after the rows are in.
	event.CurrentRegistrations = 42

	svc := NewReportService(&mockEventRepository{events: events}, ledger, attRepo, &mockFeedbackRepository{})
	report, err := svc.AttendanceReportByEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TotalRegistrations != 2 {
		t.Errorf("expected 2 registrations from rows, got %d", report.TotalRegistrations)
	}
	if report.PresentAttendances != 1 {
		t.Errorf("expected 1 present, got %d", report.PresentAttendances)
	}
	if report.AttendancePercentage != 50 {
		t.Errorf("expected 50%%, got %f", report.AttendancePercentage)
	}
	if report.AbsentCount != 1 {
		t.Errorf("expected 1 absent, got %d", report.AbsentCount)
	}
}

func TestReportService_AttendanceReport_NoRegistrations(t *testing.T) {
	ctx := context.Background()
	events := map[string]*domain.Event{"e1": newTestEvent("e1", 100, 0, true)}
	ledger := newMockRegistrationLedger(map[string]bool{}, events)
	svc := NewReportService(&mockEventRepository{events: events}, ledger, &mockAttendanceRepository{}, &mockFeedbackRepository{})

	report, err := svc.AttendanceReportByEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.AttendancePercentage != 0 {
		t.Errorf("expected 0%% with no registrations, got %f", report.AttendancePercentage)
	}

	if _, err := svc.AttendanceReportByEvent(ctx, "missing"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestReportService_AttendancePercentageRounding(t *testing.T) {
	ctx := context.Background()
	events := map[string]*domain.Event{"e1": newTestEvent("e1", 100, 0, true)}
	students := map[string]bool{"s1": true, "s2": true, "s3": true}
	ledger := newMockRegistrationLedger(students, events)
	attRepo := &mockAttendanceRepository{}
	seedLedger(t, ledger, attRepo, "e1", []string{"s1", "s2", "s3"}, []string{"s1"})

	svc := NewReportService(&mockEventRepository{events: events}, ledger, attRepo, &mockFeedbackRepository{})
	report, err := svc.AttendanceReportByEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	// 1/3 of 100 rounded to two decimals.
	if report.AttendancePercentage != 33.33 {
		t.Errorf("expected 33.33, got %f", report.AttendancePercentage)
	}
}

func TestReportService_Statistics(t *testing.T) {
	ctx := context.Background()
	events := map[string]*domain.Event{
		"e1": newTestEvent("e1", 100, 0, true),
		"e2": newTestEvent("e2", 100, 0, true),
	}
	students := map[string]bool{"s1": true, "s2": true}
	ledger := newMockRegistrationLedger(students, events)
	attRepo := &mockAttendanceRepository{}
	fbRepo := &mockFeedbackRepository{}
	seedLedger(t, ledger, attRepo, "e1", []string{"s1", "s2"}, []string{"s1"})
	if err := fbRepo.Create(ctx, domain.NewFeedback("s1", "e1", 5, "great", time.Now())); err != nil {
		t.Fatalf("seed feedback: %v", err)
	}

	svc := NewReportService(&mockEventRepository{events: events}, ledger, attRepo, fbRepo)
	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalEvents != 2 {
		t.Errorf("expected 2 events, got %d", stats.TotalEvents)
	}
	if stats.TotalRegistrations != 2 {
		t.Errorf("expected 2 registrations, got %d", stats.TotalRegistrations)
	}
	if stats.TotalAttendances != 1 {
		t.Errorf("expected 1 attendance, got %d", stats.TotalAttendances)
	}
	if stats.TotalFeedbacks != 1 {
		t.Errorf("expected 1 feedback, got %d", stats.TotalFeedbacks)
	}
	if stats.AverageAttendanceRate != 50 {
		t.Errorf("expected 50%% attendance rate, got %f", stats.AverageAttendanceRate)
	}
}
