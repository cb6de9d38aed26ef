// Package tools exposes the lookup services as named tools with string arguments,
// the shape an external language-model runner calls.
package tools

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/metrics"
	"hospital-reception-backend/internal/models"

	dps "github.com/markusmobius/go-dateparser"
	"go.uber.org/zap"
)

// ParamKind controls how an argument is normalised before the tool runs.
type ParamKind string

const (
	KindText ParamKind = "text"
	KindDate ParamKind = "date"
	KindDay  ParamKind = "weekday"
)

// Param describes one tool argument.
type Param struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Kind        ParamKind `json:"kind"`
	Required    bool      `json:"required"`
}

// Args are the caller-supplied arguments of one invocation.
type Args map[string]string

// Get returns the trimmed argument, or "" when absent.
func (a Args) Get(name string) string {
	return strings.TrimSpace(a[name])
}

// Tool is one entry of the catalogue.
type Tool struct {
	Name        string  `json:"name"`
	Group       string  `json:"group"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`

	run func(ctx context.Context, args Args) (any, error)
}

// Recorder persists invocations; the MySQL query log implements it.
type Recorder interface {
	CreateQueryLog(ctx context.Context, entry *models.QueryLog) error
}

// Registry holds the tool catalogue and runs invocations.
type Registry struct {
	tools    map[string]*Tool
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewRegistry builds the catalogue over the given services.
func NewRegistry(svc Services, logger *zap.Logger) *Registry {
	r := &Registry{
		tools:  make(map[string]*Tool),
		logger: logger,
		now:    time.Now,
	}
	for _, t := range catalogue(svc, r) {
		r.tools[t.Name] = t
	}
	return r
}

// SetRecorder enables invocation logging.
func (r *Registry) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// Tools lists the catalogue sorted by group, then name.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns one tool's description.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	if !ok {
		return Tool{}, false
	}
	return *t, true
}

// Invoke validates and normalises args, runs the tool and records the outcome.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (any, error) {
	start := time.Now()

	result, err := r.invoke(ctx, name, args)

	duration := time.Since(start)
	outcome := apperrors.KindOf(err)
	label := name
	if _, ok := r.tools[name]; !ok {
		// caller-supplied names must not grow the label set
		label = "unknown"
	}
	metrics.RecordToolInvocation(label, outcome, duration)
	r.record(ctx, name, args, outcome, duration)

	if err != nil && outcome == string(apperrors.KindInternal) {
		r.logger.Error("Tool invocation failed", zap.String("tool", name), zap.Error(err))
	}
	return result, err
}

func (r *Registry) invoke(ctx context.Context, name string, args Args) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, apperrors.NotFound("Tool", name)
	}

	normalized, err := r.normalize(t, args)
	if err != nil {
		return nil, err
	}
	return t.run(ctx, normalized)
}

func (r *Registry) normalize(t *Tool, args Args) (Args, error) {
	known := make(map[string]Param, len(t.Params))
	for _, p := range t.Params {
		known[p.Name] = p
	}
	for name := range args {
		if _, ok := known[name]; !ok {
			return nil, apperrors.InvalidInput("%s does not take argument '%s'", t.Name, name)
		}
	}

	out := make(Args, len(t.Params))
	for _, p := range t.Params {
		value := args.Get(p.Name)
		if value == "" {
			if p.Required {
				return nil, apperrors.InvalidInput("%s is required", p.Name)
			}
			continue
		}

		switch p.Kind {
		case KindDate:
			date, err := r.normalizeDate(value)
			if err != nil {
				return nil, err
			}
			value = date
		case KindDay:
			if strings.EqualFold(value, "today") {
				value = r.now().Weekday().String()
			}
		}
		out[p.Name] = value
	}
	return out, nil
}

// normalizeDate accepts YYYY-MM-DD as-is and parses anything else ("Oct 20 2024", "yesterday").
func (r *Registry) normalizeDate(value string) (string, error) {
	if _, err := time.Parse(time.DateOnly, value); err == nil {
		return value, nil
	}

	parser := dps.Parser{}
	cfg := &dps.Configuration{
		CurrentTime:         r.now(),
		PreferredDateSource: dps.CurrentPeriod,
	}
	parsed, err := parser.Parse(cfg, value)
	if err != nil || parsed.IsZero() {
		return "", apperrors.InvalidInput("could not understand date '%s'", value)
	}
	return parsed.Time.Format(time.DateOnly), nil
}

func (r *Registry) record(ctx context.Context, name string, args Args, outcome string, duration time.Duration) {
	if r.recorder == nil {
		return
	}

	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte("{}")
	}
	entry := &models.QueryLog{
		RequestID:  RequestIDFrom(ctx),
		Tool:       name,
		Arguments:  string(raw),
		Outcome:    outcome,
		DurationMs: duration.Milliseconds(),
	}
	if err := r.recorder.CreateQueryLog(ctx, entry); err != nil {
		r.logger.Warn("Failed to record tool invocation", zap.String("tool", name), zap.Error(err))
	}
}

type requestIDKey struct{}

// WithRequestID attaches a request id that recorded invocations carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id attached to ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
