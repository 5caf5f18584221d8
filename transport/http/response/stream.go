package response

import (
	"dockhub/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrStreamingUnsupported = errors.New("response writer does not support streaming")

// Stream writes Server-Sent Events. Each Send is flushed immediately.
type Stream struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// NewStream sets the event-stream headers and commits a 200.
func NewStream(writer http.ResponseWriter) (*Stream, error) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	header.Set(constant.RequestHeaderCacheControl, "no-cache")
	header.Set(constant.RequestHeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{writer: writer, flusher: flusher}, nil
}

func (s *Stream) Send(event, id string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode stream payload: %w", err)
	}

	if id != "" {
		if _, err = fmt.Fprintf(s.writer, "id: %s\n", id); err != nil {
			return fmt.Errorf("failed to write stream id: %w", err)
		}
	}

	if _, err = fmt.Fprintf(s.writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("failed to write stream event: %w", err)
	}

	s.flusher.Flush()

	return nil
}

// Ping keeps idle proxies from closing the connection.
func (s *Stream) Ping() error {
	if _, err := fmt.Fprint(s.writer, ": ping\n\n"); err != nil {
		return fmt.Errorf("failed to write stream ping: %w", err)
	}

	s.flusher.Flush()

	return nil
}
