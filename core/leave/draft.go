package leave

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
)

var (
	ErrDraftBusy   = errors.New("a letter is already being generated for this draft")
	ErrDraftClosed = errors.New("the draft session is no longer open")
)

// DraftRequest carries the context the letter prompt is built from.
type DraftRequest struct {
	TeacherName  string
	TeacherClass string
	Type         string
	Days         int
	StartDate    string
	Reason       string
}

func (r DraftRequest) prompt() string {
	reason := r.Reason
	if reason == "" {
		reason = "Personal reasons"
	}
	days := r.Days
	if days < 1 {
		days = 1
	}
	return fmt.Sprintf(`Write a formal and polite leave request letter (approx 50-80 words) from a teacher to a principal.
Details:
- Teacher Name: %s
- Class: %s
- Type: %s Leave
- Duration: %d day(s) starting from %s
- Reason context: %s

Output only the body of the letter. Do not include placeholders.`,
		r.TeacherName, r.TeacherClass, r.Type, days, r.StartDate, reason)
}

// Drafter serializes AI-assisted letter drafting. At most one draft session
// is open at a time and at most one generation may be outstanding within it;
// a result that lands after its session was closed or superseded is dropped
// rather than applied to a stale draft.
type Drafter struct {
	gen core.TextGenerator
	log core.Logger

	mu       sync.Mutex
	session  int // currently open session; 0 when none
	seq      int
	inflight bool
}

func NewDrafter(gen core.TextGenerator, log core.Logger) *Drafter {
	return &Drafter{gen: gen, log: log}
}

// Open starts a new draft session, superseding any previous one. The
// returned session id must accompany every Generate call for this draft.
func (d *Drafter) Open() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.session = d.seq
	d.inflight = false
	return d.session
}

// Close ends a session. A generation still in flight for it will have its
// result discarded.
func (d *Drafter) Close(session int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.session == session {
		d.session = 0
		d.inflight = false
	}
}

// Generate produces a letter body for the draft. It fails fast with
// ErrDraftBusy while a previous call is outstanding and with ErrDraftClosed
// when the session is not the open one - including when the session was
// closed while the generation ran, in which case the generated text is
// dropped. A generation failure surfaces as an error and leaves the draft
// for the caller to retry; no partial text is ever returned.
func (d *Drafter) Generate(ctx context.Context, session int, req DraftRequest) (string, error) {
	d.mu.Lock()
	if d.session != session {
		d.mu.Unlock()
		return "", ErrDraftClosed
	}
	if d.inflight {
		d.mu.Unlock()
		return "", ErrDraftBusy
	}
	d.inflight = true
	d.mu.Unlock()

	text, err := d.gen.GenerateText(ctx, req.prompt())

	d.mu.Lock()
	open := d.session == session
	if open {
		d.inflight = false
	}
	d.mu.Unlock()

	if !open {
		d.log.Debug("leave: dropping generated letter for a closed draft")
		return "", ErrDraftClosed
	}
	if err != nil {
		return "", errors.Wrap(err, "generating leave letter")
	}
	return text, nil
}
