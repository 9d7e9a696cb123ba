package model

// GenerateRequest represents a password generation request.
// Length is left untyped so that null and non-integer values can be reported
// distinctly from out-of-range ones; decode with json.Decoder.UseNumber.
type GenerateRequest struct {
	Length any `json:"length"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// ErrorResponse is the body returned for any failed request. Kind is set only
// for validation failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
