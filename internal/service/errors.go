package service

import "fmt"

// UpstreamError tags a failing external collaborator so the handler can
// name it in the 500 body ("OpenAI error: ...", "Pinecone error: ...").
type UpstreamError struct {
	Subsystem string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Subsystem, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func embeddingError(provider string, err error) error {
	return &UpstreamError{Subsystem: provider, Err: err}
}

func vectorIndexError(err error) error {
	return &UpstreamError{Subsystem: "Pinecone", Err: err}
}

func metadataStoreError(err error) error {
	return &UpstreamError{Subsystem: "Aurora", Err: err}
}
