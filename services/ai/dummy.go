package aisvc

import (
	"context"
	"sync"

	"github.com/ruviru/teachmate/core"
)

// DummyService is a scripted core.TextGenerator for tests. It records every
// prompt, returns a fixed text or error, and can be held open to exercise
// in-flight behavior.
type DummyService struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	gate    chan struct{}
}

var _ core.TextGenerator = (*DummyService)(nil)

func NewDummyService(text string) *DummyService {
	return &DummyService{text: text}
}

func (svc *DummyService) GenerateText(ctx context.Context, prompt string) (string, error) {
	svc.mu.Lock()
	svc.prompts = append(svc.prompts, prompt)
	gate := svc.gate
	text, err := svc.text, svc.err
	svc.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// Fail makes every subsequent generation return err (nil restores success).
func (svc *DummyService) Fail(err error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.err = err
}

// Hold blocks subsequent generations until the returned release func is
// called.
func (svc *DummyService) Hold() (release func()) {
	gate := make(chan struct{})
	svc.mu.Lock()
	svc.gate = gate
	svc.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			svc.mu.Lock()
			svc.gate = nil
			svc.mu.Unlock()
			close(gate)
		})
	}
}

// Prompts returns the prompts seen so far.
func (svc *DummyService) Prompts() []string {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	out := make([]string, len(svc.prompts))
	copy(out, svc.prompts)
	return out
}
