package leave

import (
	"fmt"
	"net/mail"
	"net/url"

	"github.com/ruviru/teachmate/core"
)

// The share artifact is a side channel for handing a request to an approver
// out of band. Whether it is ever sent has no effect on workflow state.

// ShareText formats a record for out-of-band transmission, signed by the
// teacher.
func ShareText(rec Record, teacherName, teacherClass string) string {
	return fmt.Sprintf("*Leave Request*\n\n%s\n\n- %s (%s)", rec.Reason, teacherName, teacherClass)
}

// WhatsAppURL returns a wa.me launcher with the body URL-encoded.
func WhatsAppURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

// SMSURL returns an sms: launcher with the body URL-encoded.
func SMSURL(text string) string {
	return "sms:?body=" + url.QueryEscape(text)
}

// EmailShare hands the share artifact to the mail service. Fire and forget:
// delivery failures are the mail service's to log.
func EmailShare(svc core.EmailService, to mail.Address, rec Record, teacherName, teacherClass string) {
	svc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{to},
		Subject: fmt.Sprintf("%s Leave Request - %s", rec.Type, teacherName),
		Body:    ShareText(rec, teacherName, teacherClass),
	})
}
