package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/damianp1350/ToDoAPI/model"
	"github.com/damianp1350/ToDoAPI/service"
)

// ErrorResponse is the JSON body for every failed request. Fields is only
// populated for payload field-validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Handler translates HTTP requests into service calls and service results
// into status codes.
type Handler struct {
	svc      *service.TodoService
	validate *validator.Validate
}

// Per-operation timeouts.
const (
	ListTimeout   = 5 * time.Second
	CreateTimeout = 3 * time.Second
	UpdateTimeout = 3 * time.Second
	DeleteTimeout = 2 * time.Second
)

const maxBodyBytes = 1 << 20 // 1MB

// NewHandler creates a new handler over the business service.
func NewHandler(svc *service.TodoService) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// sendJSON encodes the response into a buffer first so a failed encode never
// leaves a half-written body behind a 2xx status.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, body any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error: Failed to encode response"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError is the single adapter from service-level failures to
// HTTP responses. Status selection happens on the error code, not the text.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		h.sendError(w, svcErr.Code.HTTPStatus(), svcErr.Message)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.sendError(w, http.StatusRequestTimeout, "request timed out")
		return
	}
	if errors.Is(err, context.Canceled) {
		// Client went away, nothing to respond to.
		return
	}

	log.Printf("Unhandled service error: %v", err)
	h.sendError(w, http.StatusInternalServerError, "internal server error")
}

// decodeAndValidate decodes the JSON body into dst and runs field validation.
// It writes the 400 response itself and reports whether the caller may proceed.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			fields := make(map[string]string, len(valErrs))
			for _, ve := range valErrs {
				fields[ve.Field()] = validationMessage(ve)
			}
			h.sendJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  "validation failed",
				Fields: fields,
			})
			return false
		}
		h.sendError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// validationMessage converts a validator.FieldError to a human-readable message.
func validationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		h.sendError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// GetAll returns all todos.
// @Summary List all todos
// @Tags todos
// @Produce json
// @Success 200 {array} model.Todo
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/todos/get-all [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ListTimeout)
	defer cancel()

	todos, err := h.svc.GetAll(ctx)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}

	h.sendJSON(w, http.StatusOK, todos)
}

// GetByID returns a single todo.
// @Summary Get a todo by id
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.Todo
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/todos/{id}/get-by-id [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ListTimeout)
	defer cancel()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, todo)
}

// GetIncoming returns todos expiring within the requested time frame.
// @Summary List incoming todos
// @Tags todos
// @Produce json
// @Param timeFrame query string true "Time frame" Enums(Today,NextDay,CurrentWeek)
// @Success 200 {array} model.Todo
// @Failure 400 {object} handler.ErrorResponse
// @Router /api/todos/get-incoming [get]
func (h *Handler) GetIncoming(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ListTimeout)
	defer cancel()

	frame, err := service.ParseTimeFrame(r.URL.Query().Get("timeFrame"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	todos, err := h.svc.GetIncoming(ctx, frame)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}

	h.sendJSON(w, http.StatusOK, todos)
}

// Create creates a new todo.
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoRequest true "Todo to create"
// @Success 201 {object} model.Todo
// @Failure 400 {object} handler.ErrorResponse
// @Router /api/todos/create [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), CreateTimeout)
	defer cancel()

	defer r.Body.Close()

	var req model.CreateTodoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	todo, err := h.svc.Create(ctx, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/todos/%d/get-by-id", todo.ID))
	h.sendJSON(w, http.StatusCreated, todo)
}

// Update overwrites an existing todo.
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoRequest true "Updated todo"
// @Success 204
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/todos/{id}/update [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), UpdateTimeout)
	defer cancel()

	defer r.Body.Close()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateTodoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Update(ctx, id, req); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPercentComplete sets a todo's completion percentage.
// @Summary Set percent complete
// @Tags todos
// @Accept json
// @Param id path int true "Todo id"
// @Param body body model.SetPercentRequest true "New percentage"
// @Success 204
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/todos/{id}/percent-complete [patch]
func (h *Handler) SetPercentComplete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), UpdateTimeout)
	defer cancel()

	defer r.Body.Close()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req model.SetPercentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.SetPercentComplete(ctx, id, req.PercentComplete); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAsDone marks a todo as completed.
// @Summary Mark a todo as done
// @Tags todos
// @Param id path int true "Todo id"
// @Success 204
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/todos/{id}/mark-as-done [patch]
func (h *Handler) MarkAsDone(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), UpdateTimeout)
	defer cancel()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.MarkAsDone(ctx, id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a todo.
// @Summary Delete a todo
// @Tags todos
// @Param id path int true "Todo id"
// @Success 204
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/todos/{id}/delete [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), DeleteTimeout)
	defer cancel()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck reports service liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
