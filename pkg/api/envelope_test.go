package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/notion"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		code   string
		kind   Kind
	}{
		{400, "invalid_json", InvalidJSON},
		{400, "invalid_request_url", InvalidRequestURL},
		{400, "invalid_request", InvalidRequest},
		{400, "validation_error", ValidationError},
		{400, "missing_version", MissingVersion},
		{400, "something_else", Unknown},
		{401, "unauthorized", Unauthorized},
		{403, "restricted_resource", RestrictedResource},
		{404, "object_not_found", ObjectNotFound},
		{409, "conflict_error", Conflict},
		{429, "rate_limited", RateLimited},
		{500, "internal_server_error", InternalServerError},
		{503, "service_unavailable", ServiceUnavailable},
		{503, "database_connection_unavailable", DatabaseConnectionUnavailable},
		{503, "other", Unknown},
		{504, "gateway_timeout", GatewayTimeout},
		{418, "teapot", Unknown},
		{777, "weird", Unknown},
	}

	for _, c := range cases {
		body := fmt.Sprintf(`{"object":"error","status":%d,"code":%q,"message":"m"}`, c.status, c.code)
		err := decodeResponse(c.status, []byte(body), objBlock, &notion.Block{})
		require.Error(t, err)

		var e *Error
		require.True(t, errors.As(err, &e), body)
		assert.Equal(t, c.kind, e.Kind, body)
		assert.Equal(t, c.status, e.Status)
		assert.Equal(t, c.code, e.Code)
		assert.Equal(t, "m", e.Message)
		assert.Equal(t, c.kind, KindOf(err))
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrorInfo{Status: 404, Code: "object_not_found", Message: "Could not find block."})
	assert.Equal(t, "Object not found (404): Could not find block.", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRateLimited(err))
	assert.True(t, errors.Is(err, &Error{Kind: ObjectNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: Conflict}))

	conflict := NewError(ErrorInfo{Status: 409, Code: "conflict_error", Message: "Transaction could not be completed."})
	assert.Equal(t, "Conflict error (409): Transaction could not be completed.", conflict.Error())
	assert.Equal(t, "Invalid json", InvalidJSON.String())

	wrapped := fmt.Errorf("retrieve: %w", NewError(ErrorInfo{Status: 429, Code: "rate_limited"}))
	assert.True(t, IsRateLimited(wrapped))
	assert.Equal(t, Unknown, KindOf(errors.New("other")))
}

func TestDecodeExpectedObject(t *testing.T) {
	body := `{"object":"user","id":"ee5f0f84-409a-440f-983a-a5315961c6e4","type":"person","name":"Avo"}`
	var u notion.User
	require.NoError(t, decodeResponse(200, []byte(body), objUser, &u))
	assert.Equal(t, "Avo", u.Name)
	assert.Equal(t, notion.PersonUser, u.Type)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"empty":                 {200, ``},
		"not json":              {200, `<html>Bad Gateway</html>`},
		"array":                 {200, `[{"object":"user"}]`},
		"no discriminant":       {200, `{"id":"ee5f0f84-409a-440f-983a-a5315961c6e4"}`},
		"numeric discriminant":  {200, `{"object":5}`},
		"duplicate":             {200, `{"object":"user","object":"error"}`},
		"error and object":      {400, `{"object":"error","status":400,"code":"invalid_json","object":"user"}`},
		"wrong object":          {200, `{"object":"page","id":"59833787-2cf9-4fdf-8782-e53db20768a5"}`},
		"object with error":     {404, `{"object":"user","id":"ee5f0f84-409a-440f-983a-a5315961c6e4"}`},
		"error without status":  {400, `{"object":"error","code":"invalid_json","message":"m"}`},
		"error without code":    {400, `{"object":"error","status":400,"message":"m"}`},
		"error without message": {400, `{"object":"error","status":400,"code":"invalid_json"}`},
		"null message":          {400, `{"object":"error","status":400,"code":"invalid_json","message":null}`},
		"trailing data":         {200, `{"object":"user"} {"object":"user"}`},
		"truncated":             {200, `{"object":"user","name":"Av`},
		"invalid content":       {200, `{"object":"user","id":"not-an-id"}`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var u notion.User
			err := decodeResponse(c.status, []byte(c.body), objUser, &u)
			require.Error(t, err)
			assert.True(t, IsDecodeError(err), err.Error())

			var e *Error
			assert.False(t, errors.As(err, &e))
		})
	}
}

func TestReadObject(t *testing.T) {
	obj, err := readObject([]byte(`{"results":[{"object":"block"}],"object":"list"}`))
	require.NoError(t, err)
	assert.Equal(t, "list", obj)
}
