package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// respondApp monta respondError detrás de una ruta para poder ejercitarlo con
// app.Test.
func respondApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fallo", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func doRespond(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := respondApp(err)
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/fallo", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestRespondError_StockInsuficiente_Conflict(t *testing.T) {
	status, out := doRespond(t, &domain.InsufficientStockError{ItemID: "p-1", WarehouseID: "w-1"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

func TestRespondError_NoEncontrado_NotFound(t *testing.T) {
	status, out := doRespond(t, domain.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestRespondError_ErrorNoClasificado_NoFiltraLaCausa(t *testing.T) {
	causa := errors.New("pq: conexión rechazada en 10.0.0.8:5432")
	status, out := doRespond(t, causa)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno del servidor", out.Message)
	assert.NotContains(t, out.Message, "10.0.0.8", "la causa real no debe llegar al cliente")
}
