package captcha

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockVerifier implements votes.CaptchaVerifier for testing
type mockVerifier struct {
	ok  bool
	err error
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (bool, error) {
	return m.ok, m.err
}

func postVerify(handler *VerifyHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/captcha/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.HandleVerify(w, req)
	return w
}

func TestHandleVerify_Pass(t *testing.T) {
	handler := NewVerifyHandler(&mockVerifier{ok: true})

	w := postVerify(handler, `{"token":"validtoken"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestHandleVerify_Rejected(t *testing.T) {
	handler := NewVerifyHandler(&mockVerifier{ok: false})

	w := postVerify(handler, `{"token":"badtoken"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reCAPTCHA verification failed.")
}

func TestHandleVerify_MissingToken(t *testing.T) {
	handler := NewVerifyHandler(&mockVerifier{ok: true})

	w := postVerify(handler, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVerify_InvalidBody(t *testing.T) {
	handler := NewVerifyHandler(&mockVerifier{ok: true})

	w := postVerify(handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVerify_VerifierUnreachable(t *testing.T) {
	handler := NewVerifyHandler(&mockVerifier{err: errors.New("connection refused")})

	w := postVerify(handler, `{"token":"anytoken"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
