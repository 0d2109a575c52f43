package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskmanager/internal/models"
	"taskmanager/internal/service"
)

func doAuthed(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func newTaskRouter(tasks *mockTasks) http.Handler {
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Tasks:         tasks,
	}
	return newTestRouter(s)
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("success returns plain-text body and actor from token", func(t *testing.T) {
		tasks := &mockTasks{createID: 3}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPost, "/tasks",
			`{"title":"write spec","description":"draft","status":"pending","assignee_id":2,"created_at":"2026-08-01T10:00:00Z","updated_at":"2026-08-01T10:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if w.Body.String() != "Task Created" {
			t.Fatalf("expected body %q, got %q", "Task Created", w.Body.String())
		}
		if tasks.lastActorID != 7 {
			t.Fatalf("expected actor id 7 from token, got %d", tasks.lastActorID)
		}
		want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		if !tasks.lastCreated.CreatedAt.Equal(want) {
			t.Fatalf("created_at not passed through: %v", tasks.lastCreated.CreatedAt)
		}
	})

	t.Run("missing title yields 400", func(t *testing.T) {
		tasks := &mockTasks{}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPost, "/tasks", `{"description":"x","status":"pending"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("whitespace-only title yields 400", func(t *testing.T) {
		tasks := &mockTasks{createErr: fmt.Errorf("%w: title must not be empty", models.ErrValidation)}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPost, "/tasks", `{"title":"   ","status":"pending"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("storage failure yields 500", func(t *testing.T) {
		tasks := &mockTasks{createErr: errors.New("insert failed")}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPost, "/tasks", `{"title":"t","status":"pending"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestListTasksHandler(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tasks := &mockTasks{listTasks: []models.Task{
		{ID: 1, Title: "a", Status: "pending", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Title: "b", Status: "done", CreatedAt: now, UpdatedAt: now},
	}}
	r := newTaskRouter(tasks)

	w := doAuthed(r, http.MethodGet, "/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out []models.Task
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 || out[1].Title != "b" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetTaskHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		task := &models.Task{ID: 5, Title: "write spec", Status: "pending"}
		tasks := &mockTasks{getTask: task}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodGet, "/tasks/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out models.Task
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.ID != 5 || out.Title != "write spec" {
			t.Fatalf("unexpected task: %+v", out)
		}
		if tasks.lastGetID != 5 {
			t.Fatalf("expected lookup of id 5, got %d", tasks.lastGetID)
		}
	})

	t.Run("missing yields 404", func(t *testing.T) {
		tasks := &mockTasks{getErr: models.ErrTaskNotFound}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodGet, "/tasks/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("garbage id yields 400", func(t *testing.T) {
		tasks := &mockTasks{}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodGet, "/tasks/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdateTaskHandler(t *testing.T) {
	t.Run("success returns affected count", func(t *testing.T) {
		tasks := &mockTasks{updateN: 1}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPut, "/tasks/5",
			`{"title":"new","description":"d","status":"done","updated_at":"1999-01-01T00:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Updated int64 `json:"updated"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.Updated != 1 {
			t.Fatalf("expected updated=1, got %d", out.Updated)
		}
		if tasks.lastPatchID != 5 || tasks.lastPatch.Title != "new" || tasks.lastPatch.Status != "done" {
			t.Fatalf("unexpected patch call: id=%d patch=%+v", tasks.lastPatchID, tasks.lastPatch)
		}
	})

	t.Run("missing task yields 404, not silent success", func(t *testing.T) {
		tasks := &mockTasks{updateErr: models.ErrTaskNotFound}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPut, "/tasks/404", `{"title":"t","status":"s"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("whitespace-only status yields 400", func(t *testing.T) {
		tasks := &mockTasks{updateErr: fmt.Errorf("%w: status must not be empty", models.ErrValidation)}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodPut, "/tasks/5", `{"title":"t","status":"  "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDeleteTaskHandler(t *testing.T) {
	t.Run("success returns affected count", func(t *testing.T) {
		tasks := &mockTasks{deleteN: 1}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodDelete, "/tasks/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Deleted int64 `json:"deleted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.Deleted != 1 || tasks.lastDelID != 5 {
			t.Fatalf("unexpected delete: %+v id=%d", out, tasks.lastDelID)
		}
	})

	t.Run("missing task yields 404", func(t *testing.T) {
		tasks := &mockTasks{deleteErr: models.ErrTaskNotFound}
		r := newTaskRouter(tasks)

		w := doAuthed(r, http.MethodDelete, "/tasks/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
