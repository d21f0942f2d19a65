package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/service"
)

// TimesheetsHandler exposes the entry collection endpoints.
type TimesheetsHandler struct {
	timesheets *service.TimesheetService
}

// NewTimesheetsHandler constructs handler.
func NewTimesheetsHandler(timesheets *service.TimesheetService) *TimesheetsHandler {
	return &TimesheetsHandler{timesheets: timesheets}
}

// List handles GET /api/timesheet-entries with an optional employeeName filter.
func (h *TimesheetsHandler) List(c *fiber.Ctx) error {
	name := c.Query("employeeName")

	var (
		entries []domain.TimesheetEntry
		err     error
	)
	if name != "" {
		entries, err = h.timesheets.FindByEmployeeName(c.Context(), name)
	} else {
		entries, err = h.timesheets.ListAll(c.Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryListResponseFrom(entries))
}

// Get handles GET /api/timesheet-entries/:id.
func (h *TimesheetsHandler) Get(c *fiber.Ctx) error {
	entry, err := h.timesheets.GetEntry(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryResponseFrom(entry))
}

// Create handles POST /api/timesheet-entries.
func (h *TimesheetsHandler) Create(c *fiber.Ctx) error {
	var req dto.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeName == "" {
		return fiber.NewError(http.StatusBadRequest, "employeeName required")
	}

	entry, err := req.ToDomain()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	created, err := h.timesheets.CreateEntry(c.Context(), entry)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.EntryResponseFrom(created))
}

// Update handles PUT /api/timesheet-entries/:id with full-record overwrite.
func (h *TimesheetsHandler) Update(c *fiber.Ctx) error {
	var req dto.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	replacement, err := req.ToDomain()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.timesheets.UpdateEntry(c.Context(), c.Params("id"), replacement)
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryResponseFrom(updated))
}

// Approve handles PUT /api/timesheet-entries/:id/approve.
func (h *TimesheetsHandler) Approve(c *fiber.Ctx) error {
	entry, err := h.timesheets.ApproveEntry(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryResponseFrom(entry))
}

// Reject handles PUT /api/timesheet-entries/:id/reject.
func (h *TimesheetsHandler) Reject(c *fiber.Ctx) error {
	entry, err := h.timesheets.RejectEntry(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryResponseFrom(entry))
}

// UpdateStatus handles PUT /api/timesheet-entries/:id/status. The supplied
// status is stored verbatim.
func (h *TimesheetsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.timesheets.UpdateStatus(c.Context(), c.Params("id"), domain.EntryStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryResponseFrom(entry))
}

// Delete handles DELETE /api/timesheet-entries/:id.
func (h *TimesheetsHandler) Delete(c *fiber.Ctx) error {
	if err := h.timesheets.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// FindByName handles GET /api/timesheet-entries/employeename?name=.
func (h *TimesheetsHandler) FindByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	entries, err := h.timesheets.FindByEmployeeName(c.Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryListResponseFrom(entries))
}

// Filter handles GET /api/timesheet-entries/filter?name=&status=. Both
// parameters are optional; with neither supplied it lists everything.
func (h *TimesheetsHandler) Filter(c *fiber.Ctx) error {
	name := c.Query("name")
	status := c.Query("status")

	entries, err := h.filtered(c, name, status)
	if err != nil {
		return err
	}
	return c.JSON(dto.EntryListResponseFrom(entries))
}

// Export handles GET /api/timesheet-entries/export, streaming the filtered
// entries as CSV.
func (h *TimesheetsHandler) Export(c *fiber.Ctx) error {
	entries, err := h.filtered(c, c.Query("name"), c.Query("status"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"id", "employeeName", "weekStart", "weekEnd", "status", "totalHours",
		"submittedDate", "mon", "tue", "wed", "thu", "fri", "sat", "sun", "comments"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range entries {
		row := dto.EntryResponseFrom(&entries[i])
		record := []string{
			row.ID, row.EmployeeName, row.WeekStart, row.WeekEnd, row.Status,
			strconv.Itoa(row.TotalHours), row.SubmittedDate,
			strconv.Itoa(row.Mon), strconv.Itoa(row.Tue), strconv.Itoa(row.Wed),
			strconv.Itoa(row.Thu), strconv.Itoa(row.Fri), strconv.Itoa(row.Sat),
			strconv.Itoa(row.Sun), row.Comments,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="timesheets.csv"`)
	return c.Send(buf.Bytes())
}

func (h *TimesheetsHandler) filtered(c *fiber.Ctx, name, status string) ([]domain.TimesheetEntry, error) {
	switch {
	case name != "" && status != "":
		return h.timesheets.FindByEmployeeNameAndStatus(c.Context(), name, domain.EntryStatus(status))
	case name != "":
		return h.timesheets.FindByEmployeeName(c.Context(), name)
	default:
		return h.timesheets.ListAll(c.Context())
	}
}
