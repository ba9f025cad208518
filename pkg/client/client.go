// Package client es un cliente REST mínimo del API de procurement.
// No reintenta: cada error se devuelve al llamador tal cual.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultLoginPath ruta que anuncia el login cuando el servidor no da una.
const DefaultLoginPath = "/api/login"

// ErrUnauthorized el token falta, expiró o la sesión fue cerrada.
// El llamador puede redirigir a LoginURL.
type ErrUnauthorized struct {
	LoginURL string
	Code     string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("client: no autorizado (%s), iniciar sesión en %s", e.Code, e.LoginURL)
}

// APIError respuesta no exitosa distinta de 401.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("client: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("client: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized indica si err proviene de un 401.
func IsUnauthorized(err error) bool {
	var u *ErrUnauthorized
	return errors.As(err, &u)
}

// Client cliente HTTP con token Bearer.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken fija el token Bearer.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New crea un cliente contra baseURL (ej. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetToken cambia el token (tras un login).
func (c *Client) SetToken(token string) { c.token = token }

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// do envía la petición; out puede ser nil. Un 401 se traduce a *ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: codificar cuerpo: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("client: decodificar respuesta: %w", err)
		}
		return nil
	}

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	if resp.StatusCode == http.StatusUnauthorized {
		return &ErrUnauthorized{LoginURL: c.baseURL + DefaultLoginPath, Code: eb.Code}
	}
	msg := eb.Message
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Code: eb.Code, Message: msg, Details: eb.Details}
}
