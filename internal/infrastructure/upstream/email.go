package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// SendAppointment posts the appointment form to POST /Email/SendEmail as
// multipart form-data. Field names follow the upstream mailer contract;
// empty values are omitted. Synchronous, no retry: a failure is surfaced
// once to the caller.
func (c *Client) SendAppointment(ctx context.Context, a domain.Appointment, report *ports.File) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		key, value string
	}{
		{"ParentName", a.ParentName},
		{"ChildName", a.ChildName},
		{"ChildAge", intField(a.ChildAge)},
		{"ContactEmail", a.ContactEmail},
		{"ContactPhone", a.ContactPhone},
		{"PreferredDate", a.PreferredDate},
		{"PreferredTime", a.PreferredTime},
		{"Notes", a.Notes},
		{"SessionMode", a.SessionMode},
		{"Condition", a.Condition},
		{"DoctorName", a.DoctorName},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := w.WriteField(f.key, f.value); err != nil {
			return fmt.Errorf("encode appointment form: %w", err)
		}
	}

	if report != nil {
		part, err := w.CreateFormFile("ReportFile", report.Name)
		if err != nil {
			return fmt.Errorf("encode report attachment: %w", err)
		}
		if _, err := io.Copy(part, report.Content); err != nil {
			return fmt.Errorf("encode report attachment: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("encode appointment form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/Email/SendEmail"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, nil)
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
