package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr   error
	cancelErr     error
	lastStudentID string
	lastEventID   string
	count         int64
}

func (f *fakeRegistrationService) RegisterStudent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	f.lastStudentID, f.lastEventID = studentID, eventID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.Registration{
		ID:           "reg-1",
		StudentID:    studentID,
		EventID:      eventID,
		IsConfirmed:  true,
		RegisteredAt: time.Now(),
	}, nil
}

func (f *fakeRegistrationService) CancelRegistration(ctx context.Context, studentID, eventID string) error {
	f.lastStudentID, f.lastEventID = studentID, eventID
	return f.cancelErr
}

func (f *fakeRegistrationService) GetRegistration(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	if studentID == "s-1" && eventID == "e-1" {
		return &domain.Registration{ID: "reg-1", StudentID: studentID, EventID: eventID}, nil
	}
	return nil, domain.ErrRegistrationNotFound
}

func (f *fakeRegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationService) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationService) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	return f.count, nil
}

func TestRegistrationController_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"student_id":"s-1","event_id":"e-1"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "missing event id",
			body:       `{"student_id":"s-1"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "unknown field",
			body:       `{"student_id":"s-1","event_id":"e-1","seat":"A4"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "event full",
			body:       `{"student_id":"s-1","event_id":"e-1"}`,
			serviceErr: domain.ErrEventFull,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "already registered",
			body:       `{"student_id":"s-1","event_id":"e-1"}`,
			serviceErr: domain.ErrAlreadyRegistered,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "inactive event",
			body:       `{"student_id":"s-1","event_id":"e-1"}`,
			serviceErr: domain.ErrEventInactive,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "student not found",
			body:       `{"student_id":"s-1","event_id":"e-1"}`,
			serviceErr: domain.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{registerErr: tt.serviceErr, count: 1}
			ctrl := NewRegistrationController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")

			var resp struct {
				Data  *domain.Registration `json:"data"`
				Error *struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, resp.Data)
				assert.Equal(t, "reg-1", resp.Data.ID)
				assert.Equal(t, "s-1", resp.Data.StudentID)
				assert.True(t, resp.Data.IsConfirmed)
				assert.Nil(t, resp.Error)
			} else {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestRegistrationController_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not registered", serviceErr: domain.ErrRegistrationNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{cancelErr: tt.serviceErr}
			ctrl := NewRegistrationController(testLogger(), fake)
			body := bytes.NewBufferString(`{"student_id":"s-1","event_id":"e-1"}`)
			req := httptest.NewRequest(http.MethodPost, "/registrations/cancel", body)
			rr := httptest.NewRecorder()

			ctrl.Cancel(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), "cancelled")
			}
			assert.Equal(t, "s-1", fake.lastStudentID)
			assert.Equal(t, "e-1", fake.lastEventID)
		})
	}
}

func TestRegistrationController_Get(t *testing.T) {
	ctrl := NewRegistrationController(testLogger(), &fakeRegistrationService{})

	req := httptest.NewRequest(http.MethodGet, "/registrations/student/s-1/event/e-1", nil)
	req.SetPathValue("studentID", "s-1")
	req.SetPathValue("eventID", "e-1")
	rr := httptest.NewRecorder()
	ctrl.Get(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "reg-1")

	req = httptest.NewRequest(http.MethodGet, "/registrations/student/s-2/event/e-1", nil)
	req.SetPathValue("studentID", "s-2")
	req.SetPathValue("eventID", "e-1")
	rr = httptest.NewRecorder()
	ctrl.Get(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
