package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/baditaflorin/go_speech_similarity/internal/ports"
	"github.com/baditaflorin/go_speech_similarity/pkg/speech"
	"github.com/valyala/fasthttp"
)

// Request represents a scoring request
type Request struct {
	Expected  string `json:"expected"`
	Spoken    string `json:"spoken"`
	Threshold *int   `json:"threshold,omitempty"`
}

// BatchRequest scores several pairs in one call
type BatchRequest struct {
	Pairs []Request `json:"pairs"`
}

// Response represents a scoring response
type Response struct {
	Percent       int                    `json:"percent"`
	Score         float64                `json:"score"`
	Passed        bool                   `json:"passed"`
	Threshold     int                    `json:"threshold"`
	ExactMatch    bool                   `json:"exact_match"`
	PhoneticMatch bool                   `json:"phonetic_match"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// BatchResponse holds one response per requested pair, in order
type BatchResponse struct {
	Results []Response `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// scorer is the part of speech.SpeechSimilarity the handlers need.
type scorer interface {
	Compute(ctx context.Context, expected, spoken string) speech.Result
	Diagnose(expected, spoken string) speech.Diagnosis
}

// Server routes HTTP requests to the scorer.
type Server struct {
	scorer   scorer
	logger   ports.Logger
	maxBatch int
	timeout  time.Duration
}

// NewServer creates a request router around scorer.
func NewServer(s scorer, logger ports.Logger, maxBatch int) *Server {
	return &Server{
		scorer:   s,
		logger:   logger,
		maxBatch: maxBatch,
		timeout:  5 * time.Second,
	}
}

// Handle is the main fasthttp request handler
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "SpeechSimilarityServer")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/score":
		s.handleScore(ctx)
	case "/batch":
		s.handleBatch(ctx)
	case "/diagnose":
		s.handleDiagnose(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *Server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleScore scores a single expected/spoken pair
func (s *Server) handleScore(ctx *fasthttp.RequestCtx) {
	var req Request
	if !s.decodePost(ctx, &req) {
		return
	}
	if !validThreshold(req.Threshold) {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Threshold must be between 0 and 100")
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, s.score(c, req))
}

// handleBatch scores every pair of a batch request
func (s *Server) handleBatch(ctx *fasthttp.RequestCtx) {
	var req BatchRequest
	if !s.decodePost(ctx, &req) {
		return
	}
	if len(req.Pairs) == 0 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "At least one pair is required")
		return
	}
	if len(req.Pairs) > s.maxBatch {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		s.writeJSONError(ctx, "Too many pairs")
		return
	}
	for _, p := range req.Pairs {
		if !validThreshold(p.Threshold) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			s.writeJSONError(ctx, "Threshold must be between 0 and 100")
			return
		}
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp := BatchResponse{Results: make([]Response, 0, len(req.Pairs))}
	for _, p := range req.Pairs {
		resp.Results = append(resp.Results, s.score(c, p))
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, resp)
}

// handleDiagnose returns every intermediate value for one pair
func (s *Server) handleDiagnose(ctx *fasthttp.RequestCtx) {
	var req Request
	if !s.decodePost(ctx, &req) {
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, s.scorer.Diagnose(req.Expected, req.Spoken))
}

// decodePost enforces POST and decodes the JSON body into v. It writes the
// error response itself and reports whether the handler should continue.
func (s *Server) decodePost(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// score computes one pair, applying the request's threshold when present.
func (s *Server) score(c context.Context, req Request) Response {
	resp := toResponse(s.scorer.Compute(c, req.Expected, req.Spoken))
	if req.Threshold != nil {
		resp.Threshold = *req.Threshold
		resp.Passed = resp.Percent > resp.Threshold
	}
	return resp
}

func validThreshold(th *int) bool {
	return th == nil || (*th >= 0 && *th <= 100)
}

func toResponse(r speech.Result) Response {
	return Response{
		Percent:       r.Percent,
		Score:         r.Score,
		Passed:        r.Passed,
		Threshold:     r.Threshold,
		ExactMatch:    r.ExactMatch,
		PhoneticMatch: r.PhoneticMatch,
		Details:       r.Details,
	}
}

// writeJSONResponse writes a JSON response to the context
func (s *Server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *Server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
