// Package backend es el adaptador HTTP hacia la API REST de InfoStock, dueña de todos los
// datos (produtos, clientes, vendas, estoque, notas fiscais). No guarda estado propio.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/infostock-dashboard/pkg/logger"
)

// RequestIDHeader cabecera de correlación enviada en cada llamada.
const RequestIDHeader = "X-Request-ID"

// APIError rechazo del backend o fallo de transporte.
// Message es el texto que se muestra al operador sin modificar.
type APIError struct {
	Status    int // 0 = fallo de red/transporte
	Message   string
	Operation string
	Err       error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// StatusOf devuelve el status HTTP de un *APIError dentro de err (0 si no lo hay).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client configuración compartida (URL base, http.Client, logs, métricas).
// Usa net/http de la librería estándar; el backend es JSON simple.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// NewClient construye el cliente. timeout <= 0 deja el default de net/http (sin límite).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
		metrics:    m,
	}
}

// ForToken devuelve un API atado al token Bearer de una sesión.
func (c *Client) ForToken(token string) *API {
	return &API{client: c, token: token}
}

// API llamadas autenticadas en nombre de un operador.
type API struct {
	client *Client
	token  string
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	fallback  string // mensaje si el backend no envía uno
}

// errorBody formatos de error conocidos: {"error": ...} y {"erro": ...} (notas fiscais).
type errorBody struct {
	Error   string `json:"error"`
	Erro    string `json:"erro"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Erro != "":
		return b.Erro
	default:
		return b.Message
	}
}

// doJSON ejecuta la llamada y decodifica la respuesta en out (si out != nil).
func (c *Client) doJSON(ctx context.Context, token string, cl call, out any) error {
	raw, _, err := c.do(ctx, token, cl)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("operation", cl.operation).Msg("respuesta 2xx ilegible")
		return &APIError{
			Status:    http.StatusBadGateway,
			Message:   domain.ErrUnreadableResponse.Error(),
			Operation: cl.operation,
			Err:       fmt.Errorf("%w: %s: %v", domain.ErrUnreadableResponse, cl.operation, err),
		}
	}
	return nil
}

// do ejecuta la llamada y devuelve el cuerpo crudo y el Content-Type.
func (c *Client) do(ctx context.Context, token string, cl call) ([]byte, string, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, "", fmt.Errorf("backend: serializar %s: %w", cl.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, "", fmt.Errorf("backend: crear request %s: %w", cl.operation, err)
	}
	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackendCall(cl.operation, 0, time.Since(start))
		c.log.Warn().Err(err).
			Str("operation", cl.operation).
			Str("request_id", requestID).
			Msg("fallo de transporte hacia el backend")
		return nil, "", &APIError{Operation: cl.operation, Message: cl.fallback, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveBackendCall(cl.operation, resp.StatusCode, elapsed)
	if err != nil {
		return nil, "", &APIError{Status: resp.StatusCode, Operation: cl.operation, Message: cl.fallback, Err: err}
	}

	c.log.Debug().
		Str("operation", cl.operation).
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Str("request_id", requestID).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := cl.fallback
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.text() != "" {
			msg = eb.text()
		}
		return nil, "", &APIError{Status: resp.StatusCode, Operation: cl.operation, Message: msg}
	}
	return raw, resp.Header.Get("Content-Type"), nil
}
