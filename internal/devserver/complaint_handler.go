package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
	"github.com/intelligrievance/grievance-client/internal/core/ports"
)

type complaintHandler struct {
	store *memoryStore
}

type createComplaintRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Create handles POST /complaints. New complaints always start pending.
func (h *complaintHandler) Create(c echo.Context) error {
	userID, email, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || utf8.RuneCountInString(req.Description) < 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required and description must be at least 10 characters")
	}
	if !domain.ValidCategory(req.Category) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown category %q", req.Category))
	}

	complaint := &domain.Complaint{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
		OwnerRef:    userID,
		OwnerEmail:  email,
	}
	h.store.createComplaint(complaint)

	return c.JSON(http.StatusCreated, complaint)
}

// Mine handles GET /complaints/my.
func (h *complaintHandler) Mine(c echo.Context) error {
	userID, _, _, err := ctxCaller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.listComplaints(userID))
}

// All handles GET /admin/complaints.
func (h *complaintHandler) All(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.listComplaints(""))
}

type transitionRequest struct {
	Status domain.Status `json:"status"`
}

// Transition handles PUT /admin/complaints/:id/status. The lifecycle
// table is enforced by the store, which checks existence before the
// target: an unknown id is a 404 even when the target is also bad.
func (h *complaintHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.store.transitionComplaint(c.Param("id"), req.Status, time.Now().UTC()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(req.Status)})
}

// Analytics handles GET /admin/analytics.
func (h *complaintHandler) Analytics(c echo.Context) error {
	complaints := h.store.listComplaints("")

	byStatus := make(map[string]int)
	byCategory := make(map[string]int)
	byDay := make(map[string]int)
	var resolved int
	var resolutionTotal time.Duration

	for _, cm := range complaints {
		byStatus[string(cm.Status)]++
		byCategory[cm.Category]++
		byDay[cm.CreatedAt.Format("2006-01-02")]++
		if cm.ResolvedAt != nil {
			resolved++
			resolutionTotal += cm.ResolvedAt.Sub(cm.CreatedAt)
		}
	}

	avg := "n/a"
	if resolved > 0 {
		avg = (resolutionTotal / time.Duration(resolved)).Round(time.Minute).String()
	}

	return c.JSON(http.StatusOK, ports.AnalyticsReport{
		ByStatus:      toCounts(byStatus),
		ByCategory:    toCounts(byCategory),
		ByDay:         toCounts(byDay),
		AvgResolution: avg,
	})
}

// toCounts flattens an aggregate map into key-sorted buckets so the
// response is deterministic.
func toCounts(agg map[string]int) []ports.StatusCount {
	keys := make([]string, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ports.StatusCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, ports.StatusCount{Key: k, Count: agg[k]})
	}
	return out
}
