package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// ReportHandler maneja el reporte global de stock (protegido, solo admin/boss).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// All godoc
// @Summary      Reporte global de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/report/all [get]
func (h *ReportHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AllPDF godoc
// @Summary      Reporte global de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/report/all/pdf [get]
func (h *ReportHandler) AllPDF(c *fiber.Ctx) error {
	out, err := h.uc.StockSummaryPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-stock.pdf"`)
	return c.Send(out)
}
