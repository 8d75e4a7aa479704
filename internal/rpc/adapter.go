package rpc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/planetdemo/planetdemo/internal/middleware"
)

// Handler returns the HTTP handler that serves a single procedure.
func (p *Procedure) Handler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		call := &Call{
			Procedure:  p.name,
			Headers:    r.Header,
			RemoteAddr: r.RemoteAddr,
			Endpoint:   r.Method + " " + r.URL.Path,
			RequestID:  middleware.GetRequestID(ctx),
		}

		for _, gate := range p.gates {
			next, err := gate(ctx, call)
			if err != nil {
				p.writeError(w, r, logger, err)
				return
			}
			ctx = next
		}

		raw, err := p.collectInput(r)
		if err != nil {
			p.writeError(w, r, logger, err)
			return
		}
		applyDefaults(p.input, raw)

		if issues := validate(p.input, raw); len(issues) > 0 {
			rpcErr := NewError(CodeBadRequest, inputValidationMessage)
			rpcErr.Issues = issues
			p.writeError(w, r, logger, rpcErr)
			return
		}

		input, err := json.Marshal(raw)
		if err != nil {
			p.writeError(w, r, logger, fmt.Errorf("marshal input: %w", err))
			return
		}

		out, err := p.invoke(ctx, input)
		if err != nil {
			p.writeError(w, r, logger, err)
			return
		}

		value, body, err := normalize(out)
		if err != nil {
			p.writeError(w, r, logger, fmt.Errorf("encode output: %w", err))
			return
		}
		if issues := validate(p.output, value); len(issues) > 0 {
			rpcErr := NewError(CodeInternalServerError, outputValidationMessage)
			rpcErr.Issues = issues
			p.writeError(w, r, logger, rpcErr)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

// writeError writes err as a JSON error response.
// Server-side failures are logged with their cause; issues of output
// validation failures are logged but not sent to the client.
func (p *Procedure) writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	rpcErr := AsError(err)
	response := rpcErr.Response()

	if rpcErr.Status() >= http.StatusInternalServerError {
		logger.Error("procedure_failed",
			slog.String("procedure", p.name),
			slog.String("code", string(rpcErr.Code)),
			slog.String("error", rpcErr.Error()),
			slog.Any("issues", rpcErr.Issues),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		response.Issues = nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rpcErr.Status())
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Debug("write error response", "error", err)
	}
}
