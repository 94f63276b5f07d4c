package submission

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/valpere/postgen/internal/webhook"
)

// Message IDs rendered through the Localizer.
const (
	MsgReady      = "status_ready"
	MsgSending    = "status_sending"
	MsgSuccess    = "status_success"
	MsgFailed     = "status_failed"
	MsgTimeout    = "status_timeout"
	MsgConnection = "status_connection"
	MsgUnexpected = "status_unexpected"
	MsgStatusCode = "result_status_code"
	MsgNoEndpoint = "validation_endpoint"
	MsgNoContent  = "validation_content"
	MsgNoLanguage = "validation_language"
	MsgBadKind    = "validation_kind"
)

var validationMessages = map[Field]string{
	FieldEndpoint: MsgNoEndpoint,
	FieldContent:  MsgNoContent,
	FieldLanguage: MsgNoLanguage,
	FieldKind:     MsgBadKind,
}

// Localizer renders a message ID with optional template data.
type Localizer interface {
	T(key string, data map[string]any) string
}

// Poster performs the single outbound call.
type Poster interface {
	Post(ctx context.Context, endpoint string, payload webhook.Payload) (*webhook.Response, error)
}

type Controller struct {
	poster   Poster
	messages Localizer
	observer Observer
	logger   zerolog.Logger
}

type Option func(*Controller)

// WithObserver routes visible side effects to o instead of discarding them.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func NewController(poster Poster, messages Localizer, opts ...Option) *Controller {
	c := &Controller{
		poster:   poster,
		messages: messages,
		observer: Discard,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit runs one attempt end to end. It blocks until the endpoint answers or
// the poster gives up; every failure is reported through the Outcome.
func (c *Controller) Submit(ctx context.Context, req Request) Outcome {
	out := Outcome{
		ID:   uuid.New().String(),
		Kind: req.Kind,
	}
	logger := c.logger.With().
		Str("submission_id", out.ID).
		Str("kind", string(req.Kind)).
		Str("target_lang", req.TargetLanguage).
		Logger()

	if err := req.Validate(); err != nil {
		var ve *ValidationError
		errors.As(err, &ve)
		out.State = Failed
		out.Err = err
		out.Status = c.messages.T(validationMessages[ve.Field], nil)
		c.observer.SetStatus(req.Kind, Failed, out.Status)
		logger.Info().Str("field", string(ve.Field)).Msg("submission rejected")
		return out
	}

	c.observer.Reset(req.Kind, c.messages.T(MsgReady, nil))
	c.observer.SetStatus(req.Kind, Sending, c.messages.T(MsgSending, nil))

	logger.Debug().Str("host", endpointHost(req.Endpoint)).Msg("posting to webhook")

	start := time.Now()
	resp, err := c.poster.Post(ctx, req.Endpoint, req.payload())
	out.Latency = time.Since(start)

	if err != nil {
		err = webhook.Classify(err)
		out.State = Failed
		out.Err = err
		out.Status = c.failureStatus(err)
		c.observer.Complete(out)
		logger.Warn().Err(err).Dur("latency", out.Latency).Msg("webhook call failed")
		return out
	}

	out.StatusCode = resp.StatusCode
	out.Body = resp.Body
	if resp.Latency > 0 {
		out.Latency = resp.Latency
	}
	out.Result = c.messages.T(MsgStatusCode, map[string]any{"Code": resp.StatusCode})
	if resp.StatusCode == http.StatusOK {
		out.State = Succeeded
		out.Status = c.messages.T(MsgSuccess, nil)
	} else {
		out.State = Failed
		out.Err = &HTTPStatusError{Code: resp.StatusCode}
		out.Status = c.messages.T(MsgFailed, nil)
	}
	c.observer.Complete(out)

	logger.Info().
		Int("status_code", resp.StatusCode).
		Dur("latency", out.Latency).
		Str("state", out.State.String()).
		Msg("webhook answered")

	return out
}

func (c *Controller) failureStatus(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return c.messages.T(MsgTimeout, nil)
	case errors.Is(err, ErrConnection):
		return c.messages.T(MsgConnection, nil)
	default:
		return c.messages.T(MsgUnexpected, map[string]any{"Cause": cause(err)})
	}
}

// cause strips the classification prefix so the user sees the underlying reason.
func cause(err error) string {
	var causes interface{ Unwrap() []error }
	if errors.As(err, &causes) {
		for _, e := range causes.Unwrap() {
			if e != ErrUnexpected && e != ErrTimeout && e != ErrConnection {
				return e.Error()
			}
		}
	}
	return err.Error()
}

func endpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return u.Host
}
