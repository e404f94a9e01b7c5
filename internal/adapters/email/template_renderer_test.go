package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func TestTemplateRenderer_RegistrationConfirmed(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RegistrationConfirmedEmailData{
		Email:      "priya@example.edu",
		FirstName:  "Priya",
		EventName:  "Tech Symposium",
		EventDate:  "Fri, 12 Sep 2025 10:00",
		EventPlace: "Main Hall",
	}

	subject, htmlBody, textBody, err := r.Render("registration_confirmed", data)
	require.NoError(t, err)

	assert.Equal(t, "You are registered for Tech Symposium", subject)
	assert.Contains(t, htmlBody, "Priya")
	assert.Contains(t, htmlBody, "Main Hall")
	assert.Contains(t, textBody, "Tech Symposium")
	assert.Contains(t, textBody, "Fri, 12 Sep 2025 10:00")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("no_such_template", nil)
	assert.Error(t, err)
}
