package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sistema-ventas/pkg/apiclient"
)

func gatewayPara(t *testing.T, handler http.HandlerFunc) *apiclient.Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.NewGateway(apiclient.Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización: todo camino termina en un sobre bien formado
// ──────────────────────────────────────────────────────────────────────────────

// El servidor ya respondió con sobre: pasa tal cual, sin reenvolver.
func TestDo_SobreDelServidorPasaTalCual(t *testing.T) {
	g := gatewayPara(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"t1"},"success":true,"message":"Operación exitosa"}`))
	})

	resp := g.Do(context.Background(), http.MethodGet, "/tiendas/t1", nil)

	assert.True(t, resp.Success)
	assert.Equal(t, apiclient.MensajeExito, resp.Message)
	assert.JSONEq(t, `{"id":"t1"}`, string(resp.Data))
}

// Sobre de fallo del servidor: mensaje verbatim, sin reformular.
func TestDo_SobreDeFalloConservaMensaje(t *testing.T) {
	g := gatewayPara(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"data":null,"success":false,"message":"no hay suficiente stock disponible"}`))
	})

	resp := g.Do(context.Background(), http.MethodPost, "/productos-tienda", map[string]any{})

	assert.False(t, resp.Success)
	assert.Equal(t, "no hay suficiente stock disponible", resp.Message)
}

// Cuerpo crudo con 2xx: se envuelve como éxito con el mensaje por defecto.
func TestDo_CuerpoCrudoSeEnvuelve(t *testing.T) {
	g := gatewayPara(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"c1","nombre":"Ana"}]`))
	})

	resp := g.Do(context.Background(), http.MethodGet, "/clientes", nil)

	assert.True(t, resp.Success)
	assert.Equal(t, apiclient.MensajeExito, resp.Message)

	var clientes []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &clientes))
	require.Len(t, clientes, 1)
	assert.Equal(t, "Ana", clientes[0]["nombre"])
}

// Error HTTP sin sobre: mensaje genérico de error interno.
func TestDo_ErrorSinSobreSintetizaMensajeInterno(t *testing.T) {
	g := gatewayPara(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	})

	resp := g.Do(context.Background(), http.MethodGet, "/ventas", nil)

	assert.False(t, resp.Success)
	assert.Equal(t, apiclient.MensajeInterno, resp.Message)
	assert.Nil(t, resp.Data)
}

// Servidor inalcanzable: sobre de error de conexión, nunca un error de Go.
func TestDo_SinRespuestaSintetizaErrorDeConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // puerto ya cerrado

	g := apiclient.NewGateway(apiclient.Config{BaseURL: srv.URL, Timeout: time.Second})
	resp := g.Do(context.Background(), http.MethodGet, "/tiendas", nil)

	assert.False(t, resp.Success)
	assert.Equal(t, apiclient.MensajeConexion, resp.Message)
}

// Timeout del cliente cuenta como no-respuesta.
func TestDo_TimeoutSintetizaErrorDeConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	g := apiclient.NewGateway(apiclient.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	resp := g.Do(context.Background(), http.MethodGet, "/estadisticas/resumen", nil)

	assert.False(t, resp.Success)
	assert.Equal(t, apiclient.MensajeConexion, resp.Message)
}

// Petición imposible de construir: "Error: " + detalle.
func TestDo_PeticionInvalidaDevuelveErrorConDetalle(t *testing.T) {
	g := apiclient.NewGateway(apiclient.Config{BaseURL: "http://localhost:0"})

	// Un método con espacio es rechazado por net/http al construir la petición.
	resp := g.Do(context.Background(), "GET ", "/tiendas", nil)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Error: ")
}

// Cuerpo no serializable: también cae en "Error: " + detalle.
func TestDo_CuerpoNoSerializable(t *testing.T) {
	g := apiclient.NewGateway(apiclient.Config{BaseURL: "http://localhost:0"})

	resp := g.Do(context.Background(), http.MethodPost, "/ventas", func() {})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Error: ")
}

// Respuesta 2xx vacía: éxito sin data.
func TestDo_RespuestaVaciaEsExitoSinData(t *testing.T) {
	g := gatewayPara(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	resp := g.Do(context.Background(), http.MethodDelete, "/clientes/c1", nil)

	assert.True(t, resp.Success)
	assert.Equal(t, apiclient.MensajeExito, resp.Message)
	assert.Empty(t, resp.Data)
}
