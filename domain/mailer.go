package domain

// Mailer delivers a dual-part (HTML + plaintext) message to one recipient.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}
