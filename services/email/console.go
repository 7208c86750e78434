package emailsvc

import (
	"fmt"
	"io"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/ruviru/teachmate/core"
)

// consoleService writes messages to out instead of sending them. The default
// in debug mode, and the capture point for API tests.
type consoleService struct {
	out              io.Writer
	defaultFromEmail mail.Address
	subjPrefix       string

	mu   sync.Mutex
	sent []core.EmailMessage
}

var _ core.EmailService = (*consoleService)(nil)

func NewConsoleService(out io.Writer, conf *core.Config) *consoleService {
	return &consoleService{
		out:              out,
		defaultFromEmail: conf.DefaultFromEmail(),
		subjPrefix:       "[" + conf.AppName + "] ",
	}
}

func (svc *consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		if msg.HasRecipients() && msg.HasContent() {
			svc.send(*msg)
		}
	}
}

func (svc *consoleService) send(msg core.EmailMessage) {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s\r\n", svc.defaultFromEmail.String())
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", svc.subjPrefix+msg.Subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", svc.joinAddresses(msg.To))
	_, _ = fmt.Fprintf(body, "\r\n%s\r\n", msg.Body)

	svc.mu.Lock()
	svc.sent = append(svc.sent, msg)
	svc.mu.Unlock()

	if svc.out != nil {
		_, _ = fmt.Fprintln(svc.out, body.String())
	}
}

// Sent returns the messages handed to the service so far.
func (svc *consoleService) Sent() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	out := make([]core.EmailMessage, len(svc.sent))
	copy(out, svc.sent)
	return out
}

func (svc *consoleService) joinAddresses(addrs []mail.Address) string {
	toJoin := make([]string, 0, len(addrs))
	for _, a := range addrs {
		toJoin = append(toJoin, a.String())
	}
	return strings.Join(toJoin, ", ")
}
