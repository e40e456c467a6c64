package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"

	config "todolist.com/todolist/internal/configs"
	httpapi "todolist.com/todolist/internal/http"
	repository "todolist.com/todolist/internal/repositories"
	"todolist.com/todolist/internal/services"
	model "todolist.com/todolist/pkg/models"
)

func setupTestClient(t *testing.T) *Client {
	t.Helper()

	db, err := config.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e := echo.New()
	httpapi.Register(e, httpapi.NewHandler(services.NewTaskService(repository.NewTaskRepository(db), nil, nil), nil), httpapi.Options{})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/api/", WithHTTPClient(srv.Client()))
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestClient_CRUD(t *testing.T) {
	c := setupTestClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, CreateTaskData{Title: "Buy milk", Tags: []string{"home"}, DueDate: "2024-05-01"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 || created.Title != "Buy milk" || created.DueDate == nil {
		t.Fatalf("unexpected created task %+v", created)
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Get returned %+v", got)
	}

	completed := true
	updated, err := c.Update(ctx, created.ID, UpdateTaskData{Completed: &completed})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.Completed || updated.Title != "Buy milk" {
		t.Errorf("unexpected updated task %+v", updated)
	}

	tags, err := c.ListTags(ctx)
	if err != nil || len(tags) != 1 || tags[0] != "home" {
		t.Errorf("ListTags = %v, %v", tags, err)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := c.Get(ctx, created.ID); !IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestClient_ListWithFilters(t *testing.T) {
	c := setupTestClient(t)
	ctx := context.Background()

	tasks, err := c.List(ctx, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", tasks)
	}

	done := true
	_, _ = c.Create(ctx, CreateTaskData{Title: "march", DueDate: "2024-03-15"})
	_, _ = c.Create(ctx, CreateTaskData{Title: "done", Completed: &done, DueDate: "2024-04-15"})

	tasks, err = c.List(ctx, &model.TaskFilters{Completed: &done})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "done" {
		t.Errorf("completed filter returned %+v", tasks)
	}

	tasks, err = c.List(ctx, &model.TaskFilters{DateFrom: day(2024, 3, 1), DateTo: day(2024, 3, 15)})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "march" {
		t.Errorf("date filter returned %+v", tasks)
	}
}

func TestClient_ServerErrorsCarryMessage(t *testing.T) {
	c := setupTestClient(t)

	_, err := c.Create(context.Background(), CreateTaskData{Title: ""})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var te *TransportError
	if !errors.As(err, &te) || te.Message != "title is required" {
		t.Errorf("expected server message, got %v", err)
	}

	_, err = c.Update(context.Background(), 42, UpdateTaskData{})
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).List(context.Background(), nil)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != 0 || te.Err == nil {
		t.Errorf("expected network failure with status 0, got %+v", te)
	}
}

func TestErrorMessage_Shapes(t *testing.T) {
	cases := map[string]string{
		`{"message":"bad title"}`:             "bad title",
		`{"message":["a is bad","b is bad"]}`: "a is bad; b is bad",
		`{"error":"Not Found"}`:               "Not Found",
		`plain text`:                          "plain text",
		``:                                    http.StatusText(http.StatusTeapot),
	}

	for body, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte(body))
		}))

		err := New(srv.URL).Delete(context.Background(), 1)
		srv.Close()

		var te *TransportError
		if !errors.As(err, &te) {
			t.Errorf("body %q: expected TransportError, got %v", body, err)
			continue
		}
		if te.StatusCode != http.StatusTeapot || te.Message != want {
			t.Errorf("body %q: got %d %q, want %q", body, te.StatusCode, te.Message, want)
		}
	}
}
