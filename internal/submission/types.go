// Package submission validates user input, posts it to the webhook and maps
// the outcome onto user-visible status and per-kind result text.
package submission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valpere/postgen/internal/webhook"
)

// Kind is the input tab a request came from.
type Kind string

const (
	KindURL  Kind = "url"
	KindText Kind = "text"
)

// Kinds lists every input kind in tab order.
var Kinds = []Kind{KindURL, KindText}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	return k == KindURL || k == KindText
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindURL, KindText:
		return k, nil
	default:
		return "", fmt.Errorf("unknown submission kind %q (want url or text)", s)
	}
}

type Request struct {
	Kind           Kind   `json:"kind"`
	TargetLanguage string `json:"target_lang"`
	Content        string `json:"content"`
	Endpoint       string `json:"webhook"`
}

// Validate applies the checks in order; the first failure wins.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Endpoint) == "" {
		return &ValidationError{Field: FieldEndpoint, Message: "missing webhook URL"}
	}
	if strings.TrimSpace(r.Content) == "" {
		return &ValidationError{Field: FieldContent, Message: "missing content"}
	}
	if strings.TrimSpace(r.TargetLanguage) == "" {
		return &ValidationError{Field: FieldLanguage, Message: "missing target language"}
	}
	if !r.Kind.Valid() {
		return &ValidationError{Field: FieldKind, Message: fmt.Sprintf("unknown submission kind %q", r.Kind)}
	}
	return nil
}

func (r Request) payload() webhook.Payload {
	return webhook.Payload{
		Type:       string(r.Kind),
		TargetLang: r.TargetLanguage,
		Content:    r.Content,
	}
}

type Field string

const (
	FieldEndpoint Field = "endpoint"
	FieldContent  Field = "content"
	FieldLanguage Field = "target_lang"
	FieldKind     Field = "kind"
)

// ValidationError reports missing input. No network call was made.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Transport failures, matched with errors.Is.
var (
	ErrTimeout    = webhook.ErrTimeout
	ErrConnection = webhook.ErrConnection
	ErrUnexpected = webhook.ErrUnexpected
)

// HTTPStatusError classifies a received response whose code was not 200.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.Code)
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// State is the per-kind presentation state.
type State int

const (
	Idle State = iota
	Sending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is everything a host needs to render one finished attempt. Body is
// the start of the response body, kept for diagnostics.
type Outcome struct {
	ID         string        `json:"id"`
	Kind       Kind          `json:"kind"`
	State      State         `json:"state"`
	Status     string        `json:"status"`
	StatusCode int           `json:"status_code,omitempty"`
	Result     string        `json:"result"`
	Body       string        `json:"body,omitempty"`
	Err        error         `json:"-"`
	Latency    time.Duration `json:"latency"`
}

// Succeeded reports whether the endpoint answered 200.
func (o Outcome) Succeeded() bool {
	return o.State == Succeeded
}
