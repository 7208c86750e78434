// Package aisvc provides core.TextGenerator implementations.
package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
)

var (
	host        = "https://generativelanguage.googleapis.com"
	endpointFmt = "/v1beta/models/%s:generateContent"
)

type geminiService struct {
	key    string
	model  string
	client *http.Client
	logger core.Logger
}

var _ core.TextGenerator = (*geminiService)(nil)

func NewGeminiService(conf *core.Config, logger core.Logger) *geminiService {
	return &geminiService{
		key:    conf.AI.ApiKey,
		model:  conf.AI.Model,
		client: &http.Client{Timeout: conf.AI.Timeout},
		logger: logger,
	}
}

type (
	generateRequest struct {
		Contents []content `json:"contents"`
	}
	content struct {
		Parts []part `json:"parts"`
	}
	part struct {
		Text string `json:"text"`
	}
	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

func (svc geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", errors.Wrap(err, "encoding generation request")
	}

	url := host + fmt.Sprintf(endpointFmt, svc.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building generation request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", svc.key)

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling generation API")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("ai: generation API status %d", res.StatusCode))
		return "", errors.Errorf("generation API returned status %d", res.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "decoding generation response")
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation API returned no candidates")
	}

	var sb strings.Builder
	for _, p := range payload.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("generation API returned empty text")
	}
	return text, nil
}
