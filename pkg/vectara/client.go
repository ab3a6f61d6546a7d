package vectara

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Client queries a single Vectara corpus. It holds no per-query state and
// is safe for concurrent use. The HTTP client is injected so tests and
// callers can substitute their own transport.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a client with the given config, filling unset fields with
// defaults. A nil httpClient gets a fresh client with the configured
// request timeout.
func New(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.WithDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout()}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Query sends one search+generation request and normalizes the reply.
// Transport failures and non-2xx statuses surface as *RemoteError,
// unusable payloads as *InvalidResponseError. A single attempt is made;
// retries are the caller's concern.
func (c *Client) Query(ctx context.Context, question string) (*Result, error) {
	log := zerolog.Ctx(ctx).With().
		Str("component", "vectara").
		Str("request_id", xid.New().String()).
		Logger()

	body, err := json.Marshal(c.buildRequest(question))
	if err != nil {
		return nil, &RemoteError{Message: "failed to encode request: " + err.Error(), cause: err}
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v2/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &RemoteError{Message: "failed to create request: " + err.Error(), cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	log.Debug().Str("corpus_key", c.cfg.CorpusKey).Msg("Sending query")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: "reading response body: " + err.Error(), cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: upstreamDetail(data)}
	}

	var parsed queryResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &InvalidResponseError{Reason: "malformed response body"}
	}
	// Explicit errors beat a present summary.
	if len(parsed.FieldErrors) > 0 || len(parsed.Messages) > 0 {
		return nil, &InvalidResponseError{
			Reason:      "upstream reported errors",
			FieldErrors: parsed.FieldErrors,
			Messages:    parsed.Messages,
		}
	}
	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		return nil, &InvalidResponseError{Reason: "missing summary"}
	}

	sources := deriveSources(parsed.SearchResults, *c.cfg.ScoreCutoff)
	log.Debug().
		Int("result_count", len(parsed.SearchResults)).
		Int("source_count", len(sources)).
		Float64("factual_consistency_score", parsed.FactualConsistencyScore).
		Msg("Query succeeded")
	return &Result{Summary: summary, Sources: sources}, nil
}

func (c *Client) buildRequest(question string) queryRequest {
	return queryRequest{
		Query: question,
		Search: searchSpec{
			Corpora: []corpusSpec{{CorpusKey: c.cfg.CorpusKey}},
			Limit:   c.cfg.SearchLimit,
			Reranker: rerankerSpec{
				Type:          "mmr",
				DiversityBias: c.cfg.DiversityBias,
				Limit:         c.cfg.MaxUsedResults,
				Cutoff:        c.cfg.ScoreCutoff,
			},
		},
		Generation: generationSpec{
			PromptTemplate:        promptTemplate,
			MaxUsedSearchResults:  c.cfg.MaxUsedResults,
			MaxResponseCharacters: c.cfg.MaxResponseChars,
			ResponseLanguage:      c.cfg.ResponseLanguage,
			ModelParameters: &modelParameters{
				MaxTokens:        c.cfg.MaxResponseTokens,
				Temperature:      c.cfg.Temperature,
				FrequencyPenalty: c.cfg.FrequencyPenalty,
				PresencePenalty:  c.cfg.PresencePenalty,
			},
			Citations: citationSpec{Style: "none"},
		},
	}
}

// upstreamDetail pulls human-readable detail out of an error response body,
// falling back to the raw body.
func upstreamDetail(data []byte) string {
	var parsed struct {
		FieldErrors map[string]string `json:"field_errors"`
		Messages    []string          `json:"messages"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		var parts []string
		for field, msg := range parsed.FieldErrors {
			parts = append(parts, field+": "+msg)
		}
		parts = append(parts, parsed.Messages...)
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return strings.TrimSpace(string(data))
}
