package skillswap

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

// ServerError is a SkillSwap server error
type ServerError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (se ServerError) Error() string {
	return se.Message
}

// ErrInvalidSession is the error returned when the server rejects the
// session credential; by then the stored session has already been cleared
type ErrInvalidSession struct{}

func (err ErrInvalidSession) Error() string {
	return "invalid session: try logging in again"
}

// parseResponseError attempts to read and unmarshal a server error
// from the provided *http.Response
func parseResponseError(res *http.Response) error {
	if !strings.HasPrefix(res.Header.Get(api.HeaderContentType), api.MediaTypeJSON) {
		return errors.New(res.Status)
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	payload := buf.String()
	if payload == "" {
		return ServerError{StatusCode: res.StatusCode, Message: res.Status}
	}

	serverError := ServerError{StatusCode: res.StatusCode}
	if err := json.NewDecoder(buf).Decode(&serverError); err != nil || serverError.Message == "" {
		serverError.Message = payload
	}
	return serverError
}
