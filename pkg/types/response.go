package types

// SuccessEnvelope wraps every successful admin payload. Meta is only set on
// collection responses.
type SuccessEnvelope struct {
	Data any       `json:"data"`
	Meta *ListMeta `json:"meta,omitempty"`
}

// ListMeta describes a collection payload.
type ListMeta struct {
	Count       int    `json:"count"`
	GeneratedAt string `json:"generatedAt,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
