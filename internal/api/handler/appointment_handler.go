package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// AppointmentHandler forwards contact/appointment form submissions to the
// upstream mailer.
type AppointmentHandler struct {
	email ports.EmailClient
}

func NewAppointmentHandler(email ports.EmailClient) *AppointmentHandler {
	return &AppointmentHandler{email: email}
}

// Submit handles POST /api/appointments. Accepts JSON or form-data; a
// multipart submission may attach a medical report under "reportFile".
//
// @Summary      Submit an appointment request
// @Tags         storefront
// @Accept       json
// @Accept       mpfd
// @Success      202
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Submit(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var report *ports.File
	if fh, err := c.FormFile("reportFile"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable report file")
		}
		defer f.Close()
		report = &ports.File{Name: fh.Filename, Content: f}
	}

	if err := h.email.SendAppointment(c.Request().Context(), req.toDomain(), report); err != nil {
		metrics.AppointmentsSubmittedTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.AppointmentsSubmittedTotal.WithLabelValues("ok").Inc()

	return c.NoContent(http.StatusAccepted)
}
