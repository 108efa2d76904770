// Package models defines the wire shapes shared by the server and the CLI.
package models

// AskResponse is the body returned for a successfully handled question.
// Failures inside a handler are still reported here as descriptive answer
// text; the error envelope is reserved for request-level problems.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the body returned for request-level failures
// (missing question, malformed multipart body).
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body returned by GET /.
type StatusResponse struct {
	Status string `json:"status"`
	Usage  string `json:"usage"`
}
