package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campusevents/internal/domain"
)

func pairKey(studentID, eventID string) string {
	return studentID + ":" + eventID
}

type mockStudentRepository struct {
	students map[string]*domain.Student
	err      error
}

func (m *mockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	if m.err != nil {
		return m.err
	}
	if m.students == nil {
		m.students = map[string]*domain.Student{}
	}
	student.ID = fmt.Sprintf("s%d", len(m.students)+1)
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	st, ok := m.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return st, nil
}

func (m *mockStudentRepository) GetByStudentCode(ctx context.Context, code string) (*domain.Student, error) {
	for _, st := range m.students {
		if st.StudentCode == code {
			return st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (m *mockStudentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	for _, st := range m.students {
		if st.Email == email {
			return st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (m *mockStudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Student, 0, len(m.students))
	for _, st := range m.students {
		out = append(out, st)
	}
	return out, nil
}

func (m *mockStudentRepository) ListByCollegeID(ctx context.Context, collegeID string) ([]*domain.Student, error) {
	var out []*domain.Student
	for _, st := range m.students {
		if st.CollegeID == collegeID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *mockStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return domain.ErrStudentNotFound
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

type mockEventRepository struct {
	events map[string]*domain.Event
	// order fixes the List iteration order when a test depends on it.
	order []string
	err   error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	if m.events == nil {
		m.events = map[string]*domain.Event{}
	}
	event.ID = fmt.Sprintf("e%d", len(m.events)+1)
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.order != nil {
		out := make([]*domain.Event, 0, len(m.order))
		for _, id := range m.order {
			out = append(out, m.events[id])
		}
		return out, nil
	}
	out := make([]*domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

func (m *mockEventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.IsActive {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) ListAvailable(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.IsActive && ev.HasCapacity() {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) ListByCollegeID(ctx context.Context, collegeID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.CollegeID == collegeID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) ListByType(ctx context.Context, eventType string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.EventType == eventType {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) Search(ctx context.Context, term string) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockEventRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

// mockRegistrationLedger is an in-memory stand-in for the transactional
// registration repository. A single mutex plays the role of the event row
// lock: precondition checks and the counter change happen under it, so
// concurrent Register calls serialize the same way they do against the
// database.
type mockRegistrationLedger struct {
	mu       sync.Mutex
	students map[string]bool
	events   map[string]*domain.Event
	regs     map[string]*domain.Registration
	nextID   int
	err      error
}

func newMockRegistrationLedger(students map[string]bool, events map[string]*domain.Event) *mockRegistrationLedger {
	return &mockRegistrationLedger{
		students: students,
		events:   events,
		regs:     map[string]*domain.Registration{},
	}
}

func (m *mockRegistrationLedger) Register(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if !m.students[studentID] {
		return nil, domain.ErrStudentNotFound
	}
	event, ok := m.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if !event.IsActive {
		return nil, domain.ErrEventInactive
	}
	if _, exists := m.regs[pairKey(studentID, eventID)]; exists {
		return nil, domain.ErrAlreadyRegistered
	}
	if !event.HasCapacity() {
		return nil, domain.ErrEventFull
	}
	m.nextID++
	reg := &domain.Registration{
		ID:           fmt.Sprintf("r%d", m.nextID),
		StudentID:    studentID,
		EventID:      eventID,
		IsConfirmed:  true,
		RegisteredAt: time.Now(),
	}
	m.regs[pairKey(studentID, eventID)] = reg
	event.CurrentRegistrations++
	return reg, nil
}

func (m *mockRegistrationLedger) Cancel(ctx context.Context, studentID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	event, ok := m.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if _, exists := m.regs[pairKey(studentID, eventID)]; !exists {
		return domain.ErrRegistrationNotFound
	}
	delete(m.regs, pairKey(studentID, eventID))
	if event.CurrentRegistrations > 0 {
		event.CurrentRegistrations--
	}
	return nil
}

func (m *mockRegistrationLedger) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg, ok := m.regs[pairKey(studentID, eventID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationLedger) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Registration
	for _, reg := range m.regs {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *mockRegistrationLedger) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Registration
	for _, reg := range m.regs {
		if reg.StudentID == studentID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *mockRegistrationLedger) List(ctx context.Context) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Registration, 0, len(m.regs))
	for _, reg := range m.regs {
		out = append(out, reg)
	}
	return out, nil
}

func (m *mockRegistrationLedger) CountConfirmedByEventID(ctx context.Context, eventID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, reg := range m.regs {
		if reg.EventID == eventID && reg.IsConfirmed {
			n++
		}
	}
	return n, nil
}

func (m *mockRegistrationLedger) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.regs)), nil
}

type mockAttendanceRepository struct {
	atts   map[string]*domain.Attendance
	nextID int
	err    error
}

func (m *mockAttendanceRepository) Upsert(ctx context.Context, att *domain.Attendance) error {
	if m.err != nil {
		return m.err
	}
	if m.atts == nil {
		m.atts = map[string]*domain.Attendance{}
	}
	key := pairKey(att.StudentID, att.EventID)
	if existing, ok := m.atts[key]; ok {
		att.ID = existing.ID
	} else {
		m.nextID++
		att.ID = fmt.Sprintf("a%d", m.nextID)
	}
	m.atts[key] = att
	return nil
}

func (m *mockAttendanceRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Attendance, error) {
	att, ok := m.atts[pairKey(studentID, eventID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return att, nil
}

func (m *mockAttendanceRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	var out []*domain.Attendance
	for _, att := range m.atts {
		if att.EventID == eventID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	var out []*domain.Attendance
	for _, att := range m.atts {
		if att.StudentID == studentID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) ListPresentByEventID(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	var out []*domain.Attendance
	for _, att := range m.atts {
		if att.EventID == eventID && att.IsPresent {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) ListPresentByStudentID(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	var out []*domain.Attendance
	for _, att := range m.atts {
		if att.StudentID == studentID && att.IsPresent {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) List(ctx context.Context) ([]*domain.Attendance, error) {
	out := make([]*domain.Attendance, 0, len(m.atts))
	for _, att := range m.atts {
		out = append(out, att)
	}
	return out, nil
}

func (m *mockAttendanceRepository) CountPresentByEventID(ctx context.Context, eventID string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, att := range m.atts {
		if att.EventID == eventID && att.IsPresent {
			n++
		}
	}
	return n, nil
}

func (m *mockAttendanceRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.atts)), nil
}

type mockFeedbackRepository struct {
	fbs    map[string]*domain.Feedback
	nextID int
	err    error
}

func (m *mockFeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if m.err != nil {
		return m.err
	}
	if m.fbs == nil {
		m.fbs = map[string]*domain.Feedback{}
	}
	key := pairKey(fb.StudentID, fb.EventID)
	if _, ok := m.fbs[key]; ok {
		return domain.ErrFeedbackExists
	}
	m.nextID++
	fb.ID = fmt.Sprintf("f%d", m.nextID)
	m.fbs[key] = fb
	return nil
}

func (m *mockFeedbackRepository) Update(ctx context.Context, fb *domain.Feedback) error {
	if m.err != nil {
		return m.err
	}
	key := pairKey(fb.StudentID, fb.EventID)
	existing, ok := m.fbs[key]
	if !ok {
		return domain.ErrFeedbackNotFound
	}
	fb.ID = existing.ID
	m.fbs[key] = fb
	return nil
}

func (m *mockFeedbackRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Feedback, error) {
	fb, ok := m.fbs[pairKey(studentID, eventID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return fb, nil
}

func (m *mockFeedbackRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	for _, fb := range m.fbs {
		if fb.EventID == eventID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepository) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	for _, fb := range m.fbs {
		if fb.StudentID == studentID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	out := make([]*domain.Feedback, 0, len(m.fbs))
	for _, fb := range m.fbs {
		out = append(out, fb)
	}
	return out, nil
}

func (m *mockFeedbackRepository) AverageRatingByEventID(ctx context.Context, eventID string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var sum, n int
	for _, fb := range m.fbs {
		if fb.EventID == eventID {
			sum += fb.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func (m *mockFeedbackRepository) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var n int64
	for _, fb := range m.fbs {
		if fb.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (m *mockFeedbackRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.fbs)), nil
}

func (m *mockFeedbackRepository) Delete(ctx context.Context, id string) error {
	for key, fb := range m.fbs {
		if fb.ID == id {
			delete(m.fbs, key)
			return nil
		}
	}
	return domain.ErrFeedbackNotFound
}

type mockCollegeRepository struct {
	colleges map[string]*domain.College
	err      error
}

func (m *mockCollegeRepository) Create(ctx context.Context, college *domain.College) error {
	if m.err != nil {
		return m.err
	}
	if m.colleges == nil {
		m.colleges = map[string]*domain.College{}
	}
	college.ID = fmt.Sprintf("c%d", len(m.colleges)+1)
	m.colleges[college.ID] = college
	return nil
}

func (m *mockCollegeRepository) GetByID(ctx context.Context, id string) (*domain.College, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.colleges[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCollegeRepository) GetByName(ctx context.Context, name string) (*domain.College, error) {
	for _, c := range m.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCollegeRepository) List(ctx context.Context) ([]*domain.College, error) {
	out := make([]*domain.College, 0, len(m.colleges))
	for _, c := range m.colleges {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCollegeRepository) Update(ctx context.Context, college *domain.College) error {
	if _, ok := m.colleges[college.ID]; !ok {
		return domain.ErrNotFound
	}
	m.colleges[college.ID] = college
	return nil
}

func (m *mockCollegeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.colleges[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.colleges, id)
	return nil
}

type mockEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationConfirmedEmailData
	err  error
}

func (m *mockEmailService) SendRegistrationConfirmed(ctx context.Context, data *domain.RegistrationConfirmedEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}
