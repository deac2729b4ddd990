package mailer

import (
	"fmt"
	"html"

	"wedding-portal-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPortalLink(toEmail, guestName, coupleNames, portalLink string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendPortalLink(toEmail, guestName, coupleNames, portalLink string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your invitation to %s's wedding", coupleNames))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Dear %s,</h2>
			<p>%s would love to have you at their wedding.</p>
			<p>Your personal guest page has the schedule, hotels and dress code, and lets you RSVP and share your travel plans:</p>
			<a href="%s" style="background-color: #B76E79; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open my guest page</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link is personal. Please do not share it.</p>
		</div>
	`, html.EscapeString(guestName), html.EscapeString(coupleNames), portalLink, portalLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send portal link", map[string]interface{}{
			"to":    toEmail,
			"error": err,
		})
		return err
	}

	s.logger.Info("MAILER", "Portal link sent", map[string]interface{}{"to": toEmail})
	return nil
}
