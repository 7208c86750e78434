package leave_test

import (
	"strings"
	"testing"

	"github.com/ruviru/teachmate/core/leave"
)

func TestShareText(t *testing.T) {
	rec := leave.Record{Type: leave.TypeCasual, Reason: "Attending a family almsgiving."}

	text := leave.ShareText(rec, "Mrs. Sarah Silva", "10-B")
	if !strings.Contains(text, "Attending a family almsgiving.") {
		t.Errorf("ShareText() is missing the reason: %q", text)
	}
	if !strings.HasSuffix(text, "- Mrs. Sarah Silva (10-B)") {
		t.Errorf("ShareText() is missing the signature: %q", text)
	}
}

func TestShareURLsEncodeBody(t *testing.T) {
	text := "*Leave Request*\n\nneed a day off\n\n- A (1-A)"

	wa := leave.WhatsAppURL(text)
	if !strings.HasPrefix(wa, "https://wa.me/?text=") || strings.ContainsAny(wa[len("https://wa.me/?text="):], "\n*") {
		t.Errorf("WhatsAppURL() body not encoded: %q", wa)
	}
	sms := leave.SMSURL(text)
	if !strings.HasPrefix(sms, "sms:?body=") || strings.Contains(sms, "\n") {
		t.Errorf("SMSURL() body not encoded: %q", sms)
	}
}
