package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/report"
	"hrms-lite/internal/service"
)

type Handler struct {
	service service.Manager
	logger  *log.Logger
}

func NewHandler(svc service.Manager, logger *log.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes mounts the employee and attendance endpoints on r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/employees", h.handleListEmployees)
	r.POST("/employees", h.handleCreateEmployee)
	r.GET("/employees/:id", h.handleGetEmployee)
	r.DELETE("/employees/:id", h.handleDeleteEmployee)

	r.GET("/attendance", h.handleListAttendance)
	r.POST("/attendance", h.handleMarkAttendance)
	r.GET("/attendance/summary", h.handleSummarizeAttendance)
	r.GET("/attendance/export", h.handleExportAttendance)
	r.DELETE("/attendance/:id", h.handleDeleteAttendance)
}

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type markAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Code   apperror.Code     `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Draft  interface{}       `json:"draft,omitempty"`
}

func (h *Handler) handleListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context(), service.EmployeeFilter{
		Search:     c.Query("search"),
		Department: strings.TrimSpace(c.Query("department")),
	})
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *Handler) handleCreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	draft := service.EmployeeDraft{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}
	employee, err := draft.Submit(c.Request.Context(), h.service)
	if err != nil {
		h.respondWithError(c, err, &draft)
		return
	}

	c.Header("Location", "/api/employees/"+employee.ID)
	c.JSON(http.StatusCreated, employee)
}

func (h *Handler) handleGetEmployee(c *gin.Context) {
	employee, err := h.service.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) handleDeleteEmployee(c *gin.Context) {
	confirmed, err := parseConfirm(c.Query("confirm"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.DeleteEmployee(c.Request.Context(), c.Param("id"), confirmed)
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleListAttendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.ListAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) handleMarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	draft := service.AttendanceDraft{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}
	record, err := draft.Submit(c.Request.Context(), h.service)
	if err != nil {
		h.respondWithError(c, err, &draft)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) handleSummarizeAttendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.SummarizeAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) handleExportAttendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.ListAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}
	summary, err := h.service.SummarizeAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteAttendance(&buf, records, summary); err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}

func (h *Handler) handleDeleteAttendance(c *gin.Context) {
	confirmed, err := parseConfirm(c.Query("confirm"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteAttendance(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		h.respondWithError(c, err, nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondWithError renders err with the status its code maps to. draft, when
// non-nil, is echoed back on validation failures so a form can re-render it.
func (h *Handler) respondWithError(c *gin.Context, err error, draft interface{}) {
	message := err.Error()
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	code := apperror.GetCode(err)
	body := errorResponse{
		Error:  message,
		Code:   code,
		Fields: apperror.FieldErrors(err),
	}

	var status int
	switch code {
	case apperror.CodeValidation:
		status = http.StatusBadRequest
		body.Draft = draft
	case apperror.CodeNotFound:
		status = http.StatusNotFound
	case apperror.CodeConflict:
		status = http.StatusConflict
	case apperror.CodeConfirmationRequired:
		status = http.StatusPreconditionRequired
	default:
		h.logger.Printf("unexpected error: %v request_id=%s", err, c.GetString(requestIDKey))
		status = http.StatusInternalServerError
		body = errorResponse{Error: "internal server error", Code: apperror.CodeInternal}
	}

	c.JSON(status, body)
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

func parseConfirm(raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false, nil
	}
	confirmed, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.New("confirm must be a boolean")
	}
	return confirmed, nil
}

func parseAttendanceFilter(c *gin.Context) (service.AttendanceFilter, error) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return service.AttendanceFilter{}, err
	}

	return service.AttendanceFilter{
		EmployeeID: strings.TrimSpace(c.Query("employee_id")),
		Date:       date,
	}, nil
}

func parseDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	parsed, err := service.ParseDate(value)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	return &parsed, nil
}
