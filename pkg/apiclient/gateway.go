package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/sistema-ventas/pkg/logger"
)

// Respuesta es el sobre uniforme que toda llamada al API devuelve. Do
// garantiza su forma aun cuando el servidor no respondió con sobre, o no
// respondió en absoluto: ningún consumidor necesita manejar un error de Go.
type Respuesta struct {
	Data    json.RawMessage   `json:"data"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ErrorValidacion `json:"errors,omitempty"`
}

// ErrorValidacion error de validación asociado a un campo.
type ErrorValidacion struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Mensajes de normalización del gateway.
const (
	MensajeExito    = "Operación exitosa"
	MensajeInterno  = "Error interno del servidor"
	MensajeConexion = "Error de conexión con el servidor"
)

// Config opciones del gateway.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger
}

// Gateway cliente HTTP del API con normalización total de respuestas.
type Gateway struct {
	baseURL string
	hc      *http.Client
	log     *logger.Logger
}

// NewGateway construye el gateway. BaseURL apunta a la raíz del API
// (por ejemplo http://localhost:8080/api).
func NewGateway(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = logger.New(logger.Config{Level: "warn"})
	}
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Do ejecuta la petición y devuelve siempre un sobre bien formado:
//   - el servidor respondió con sobre: pasa tal cual;
//   - respondió 2xx sin sobre: el cuerpo se envuelve como éxito;
//   - respondió un error sin sobre: "Error interno del servidor";
//   - no respondió (red, timeout): "Error de conexión con el servidor";
//   - la petición no pudo construirse: "Error: " + detalle.
func (g *Gateway) Do(ctx context.Context, method, path string, body any) *Respuesta {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Respuesta{Success: false, Message: "Error: " + err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &Respuesta{Success: false, Message: "Error: " + err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		g.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("sin respuesta del servidor")
		return &Respuesta{Success: false, Message: MensajeConexion}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Warn().Err(err).Str("path", path).Msg("cuerpo de respuesta ilegible")
		return &Respuesta{Success: false, Message: MensajeConexion}
	}

	return normalizar(resp.StatusCode, raw)
}

// normalizar convierte cualquier cuerpo de respuesta en un sobre.
func normalizar(status int, raw []byte) *Respuesta {
	if env, ok := decodificarSobre(raw); ok {
		return env
	}
	if status >= 200 && status < 300 {
		data := json.RawMessage(raw)
		if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
			data = nil
		}
		return &Respuesta{Data: data, Success: true, Message: MensajeExito}
	}
	return &Respuesta{Success: false, Message: MensajeInterno}
}

// decodificarSobre intenta leer el cuerpo como sobre {data, success, message}.
// Solo cuenta como sobre un objeto JSON que declare el campo success.
func decodificarSobre(raw []byte) (*Respuesta, bool) {
	var probe struct {
		Data    json.RawMessage   `json:"data"`
		Success *bool             `json:"success"`
		Message string            `json:"message"`
		Errors  []ErrorValidacion `json:"errors"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Success == nil {
		return nil, false
	}
	return &Respuesta{
		Data:    probe.Data,
		Success: *probe.Success,
		Message: probe.Message,
		Errors:  probe.Errors,
	}, true
}
