package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResetPassword(t *testing.T) {
	subject, body, err := Render(ResetPasswordTemplate, struct {
		Username string
		ResetURL string
		ValidFor string
	}{"ana", "https://unilocal.app/reset?token=abc", "1h0m0s"})
	require.NoError(t, err)

	assert.Equal(t, "Reset your UniLocal password", subject)
	assert.Contains(t, body, "Hi ana,")
	assert.Contains(t, body, `href="https://unilocal.app/reset?token=abc"`)
	assert.Contains(t, body, "1h0m0s")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestNewSMTPMailerRequiresHostAndSender(t *testing.T) {
	_, err := NewSMTPMailer("", 587, "u", "p", "no-reply@unilocal.app")
	assert.Error(t, err)

	_, err = NewSMTPMailer("smtp.local", 587, "u", "p", "")
	assert.Error(t, err)

	m, err := NewSMTPMailer("smtp.local", 587, "u", "p", "no-reply@unilocal.app")
	require.NoError(t, err)
	assert.NotNil(t, m)
}
