package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/store"
	"github.com/josephgoksu/taskdeck/types"
)

// errMalformedBody marks a request body that is not a JSON task input.
var errMalformedBody = errors.New("malformed request body")

// handleHealth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleListTasks
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeAPIJSON(w, http.StatusOK, tasks)
}

// handleGetTask
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		s.writeStoreError(w, r, store.ErrNotFound)
		return
	}

	task, err := s.store.GetTask(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeAPIJSON(w, http.StatusOK, task)
}

// handleCreateTask
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	content, err := decodeContent(w, r)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	task, err := s.store.CreateTask(r.Context(), content)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeAPIJSON(w, http.StatusCreated, task)
}

// handleUpdateTask
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		s.writeStoreError(w, r, store.ErrNotFound)
		return
	}

	content, err := decodeContent(w, r)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	task, err := s.store.UpdateTask(r.Context(), id, content)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeAPIJSON(w, http.StatusOK, task)
}

// handleDeleteTask
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		s.writeStoreError(w, r, store.ErrNotFound)
		return
	}

	if err := s.store.DeleteTask(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// taskID parses the {id} path segment. Anything but a base-10 integer
// cannot name a task.
func taskID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeContent reads a TaskInput body. A body that is not exactly one
// JSON value is errMalformedBody; an absent body or a missing, null or
// empty content is a *store.ValidationError.
func decodeContent(w http.ResponseWriter, r *http.Request) (string, error) {
	var in models.TaskInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(&in)
	if err == nil {
		// Exactly one JSON value; anything after it is malformed.
		if err = dec.Decode(&json.RawMessage{}); err == nil {
			err = errors.New("unexpected data after JSON body")
		} else if errors.Is(err, io.EOF) {
			err = nil
		}
	} else if errors.Is(err, io.EOF) {
		// An absent body carries no content, like {}.
		err = nil
	}
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
	case errors.As(err, &tooLarge):
		return "", err
	default:
		return "", errors.Join(errMalformedBody, err)
	}
	if err := models.ValidateStruct(in); err != nil {
		return "", &store.ValidationError{Field: "content", Message: "task content is required"}
	}
	return *in.Content, nil
}

// writeStoreError maps the store error taxonomy onto HTTP statuses.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *store.ValidationError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &ve):
		writeAPIError(w, http.StatusBadRequest, types.NewAPIError(types.CodeValidation, ve.Message))
	case errors.Is(err, store.ErrNotFound):
		writeAPIError(w, http.StatusNotFound, types.NewAPIError(types.CodeNotFound, msgNotFound))
	case errors.As(err, &tooLarge):
		writeAPIError(w, http.StatusRequestEntityTooLarge, types.NewAPIError(types.CodeValidation, "request body too large"))
	default:
		s.log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		writeAPIError(w, http.StatusInternalServerError, types.NewAPIError(types.CodeInternal, msgInternal))
	}
}

func writeAPIJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeAPIError(w http.ResponseWriter, status int, apiErr *types.APIError) {
	writeAPIJSON(w, status, apiErr)
}
