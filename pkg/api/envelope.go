package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Object discriminants
const (
	objBlock    = "block"
	objPage     = "page"
	objDatabase = "database"
	objUser     = "user"
	objList     = "list"
	objError    = "error"
)

// readObject returns the value of the top level "object" member.
// The body must be a single JSON object with exactly one string
// discriminant.
func readObject(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", fmt.Errorf("expected a JSON object")
	}

	object := ""
	found := false
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return "", err
		}
		key, _ := tok.(string)
		if key != "object" {
			var skip json.RawMessage
			err = dec.Decode(&skip)
			if err != nil {
				return "", err
			}
			continue
		}

		if found {
			return "", fmt.Errorf("duplicate \"object\" member")
		}
		err = dec.Decode(&object)
		if err != nil {
			return "", fmt.Errorf("invalid \"object\" member: %w", err)
		}
		found = true
	}

	// closing brace
	_, err = dec.Token()
	if err != nil {
		return "", err
	}
	_, err = dec.Token()
	if err != io.EOF {
		return "", fmt.Errorf("unexpected data after JSON object")
	}

	if !found {
		return "", fmt.Errorf("missing \"object\" member")
	}
	return object, nil
}

// decodeResponse reads a response body that is either the expected
// object or an error payload.
//
// Returns a *Error for error payloads and a *DecodeError if the body
// is neither.
func decodeResponse(status int, data []byte, object string, dst interface{}) error {
	kind, err := readObject(data)
	if err != nil {
		return &DecodeError{Status: status, Err: err}
	}

	switch kind {
	case objError:
		info, err := decodeErrorInfo(data)
		if err != nil {
			return &DecodeError{Status: status, Err: err}
		}
		return NewError(info)
	case object:
		if status >= 400 {
			return &DecodeError{
				Status: status,
				Err:    fmt.Errorf("got %q object with error status", kind),
			}
		}
		err = json.Unmarshal(data, dst)
		if err != nil {
			return &DecodeError{Status: status, Err: err}
		}
		return nil
	}

	return &DecodeError{
		Status: status,
		Err:    fmt.Errorf("unexpected object %q, expected %q", kind, object),
	}
}

func decodeErrorInfo(data []byte) (ErrorInfo, error) {
	var raw struct {
		Status  *int    `json:"status"`
		Code    *string `json:"code"`
		Message *string `json:"message"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return ErrorInfo{}, err
	}
	if raw.Status == nil || raw.Code == nil || raw.Message == nil {
		return ErrorInfo{}, fmt.Errorf("error payload without status, code or message")
	}

	return ErrorInfo{Status: *raw.Status, Code: *raw.Code, Message: *raw.Message}, nil
}
