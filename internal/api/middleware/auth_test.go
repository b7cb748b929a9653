package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	accountID string
	err       error
}

func (v *stubVerifier) VerifyToken(_ string) (string, error) {
	return v.accountID, v.err
}

func invoke(t *testing.T, verifier TokenVerifier, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dogs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(verifier)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, h(c)
}

func assert401(t *testing.T, err error, wantMsg string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", he.Code)
	}
	if he.Message != wantMsg {
		t.Fatalf("message = %v, want %q", he.Message, wantMsg)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	_, err := invoke(t, &stubVerifier{}, "")
	assert401(t, err, MsgHeaderMissing)
}

func TestAuthNotBearer(t *testing.T) {
	_, err := invoke(t, &stubVerifier{}, "Basic dXNlcjpwYXNz")
	assert401(t, err, MsgNotBearer)
}

func TestAuthNoScheme(t *testing.T) {
	_, err := invoke(t, &stubVerifier{}, "just-a-token")
	assert401(t, err, MsgNotBearer)
}

func TestAuthInvalidToken(t *testing.T) {
	_, err := invoke(t, &stubVerifier{err: errors.New("expired")}, "Bearer bad-token")
	assert401(t, err, MsgInvalidToken)
}

func TestAuthValidToken(t *testing.T) {
	c, err := invoke(t, &stubVerifier{accountID: "acc-1"}, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected the handler to run, got %v", err)
	}
	if got := c.Get(ContextAccountID); got != "acc-1" {
		t.Fatalf("account_id = %v, want acc-1", got)
	}
}

func TestAuthLowercaseBearer(t *testing.T) {
	_, err := invoke(t, &stubVerifier{accountID: "acc-1"}, "bearer good-token")
	if err != nil {
		t.Fatalf("the scheme comparison is case-insensitive, got %v", err)
	}
}

func TestRequireJSON(t *testing.T) {
	e := echo.New()
	h := RequireJSON()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPatch, "/dogs/1", strings.NewReader("name=Rex"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected a 415, got %v", err)
	}
	if he.Message != "This resource only has an application/json representation" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireJSONWithCharset(t *testing.T) {
	e := echo.New()
	h := RequireJSON()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPatch, "/dogs/1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h(c); err != nil {
		t.Fatalf("expected the handler to run, got %v", err)
	}
}
