package yamjson

import "errors"

// ErrNoPath is returned by Save and Reload on a Document without a source path.
var ErrNoPath = errors.New("yamjson: document has no file path")

// ConversionError reports a failure of the strict conversion primitives: malformed YAML,
// a non-scalar mapping key, an unsupported node or value kind, or an emitter failure.
type ConversionError struct {
	Msg string
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return "yamjson: " + e.Msg
	}
	return "yamjson: " + e.Msg + ": " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }

func convErr(msg string, err error) error {
	return &ConversionError{Msg: msg, Err: err}
}
