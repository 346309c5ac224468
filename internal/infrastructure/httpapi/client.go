package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// TokenSource provee la credencial vigente en el momento del dispatch de cada petición.
// Con credencial vacía el decorador no añade header: el cliente queda anónimo.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapta una función a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client cliente único del API remoto. Toda petición de la aplicación sale por aquí:
// base URL fija, decoración Bearer + X-Request-ID antes del dispatch, sin reintentos
// ni deduplicación (la política de re-invocación es del caller).
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger

	Auth         *AuthAPI
	Public       *PublicAPI
	Products     *ProductsAPI
	Transactions *TransactionsAPI
	Dashboard    *DashboardAPI
	Shops        *ShopsAPI
}

// New construye el cliente. timeout cero significa sin límite.
func New(baseURL string, tokens TokenSource, timeout time.Duration, log *logger.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
	c.Auth = &AuthAPI{c: c}
	c.Public = &PublicAPI{c: c}
	c.Products = &ProductsAPI{c: c}
	c.Transactions = &TransactionsAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}
	c.Shops = &ShopsAPI{c: c}
	return c
}

// do arma, decora y ejecuta una petición, decodificando la respuesta en out (si no es nil).
// El header Authorization refleja el token al momento del dispatch, no al de la respuesta.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: serializar cuerpo: %v", domain.ErrInvalidInput, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: construir petición: %v", domain.ErrInvalidInput, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("petición saliente")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(resp.Body)
		apiErr := newAPIError(resp.StatusCode, payload)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("request_id", requestID).
			Str("message", apiErr.Message).
			Msg("respuesta de error del API")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrTransport, err)
	}
	return nil
}
