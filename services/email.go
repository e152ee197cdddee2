package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct{}

func NewEmailService() *EmailService {
	return &EmailService{}
}

// SendPasswordReset mails the reset link for the given token. Failures are
// logged, not surfaced: the reset endpoint answers the same way whether or
// not mail went out.
func (s *EmailService) SendPasswordReset(toEmail, token string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("FRONTEND_URL"), token)

	htmlBody := fmt.Sprintf(`<html><body>
<h2>Password Reset Request</h2>
<p>Hello,</p>
<p>We received a request to reset your password. Click the link below to proceed:</p>
<p><a href="%s">Reset Password</a></p>
<p>If you did not request this, you can ignore this email.</p>
<p>Thanks,<br>The Tuinue Wasichana Team</p>
</body></html>`, resetLink)

	plainBody := fmt.Sprintf("Hello,\n\nYou requested a password reset. Use the link below to reset your password:\n\n%s\n\nIf you did not request this, please ignore this email.\n\nThanks,\nThe Tuinue Wasichana Team\n", resetLink)

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("FROM_EMAIL"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	d := gomail.NewDialer(os.Getenv("SMTP_SERVER"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send password reset email to %s: %v", toEmail, err)
		return
	}
	log.Printf("Password reset email sent to %s", toEmail)
}
