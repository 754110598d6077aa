package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks_RequireAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	rec, body := doJSON(t, env, http.MethodGet, "/api/tasks", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", body["message"])
}

func TestTasks_CreateAndGet(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	reg := register(t, env, "alice", "a@x.com", "secret123")
	token := reg["token"].(string)
	aliceID := reg["user"].(map[string]any)["id"].(string)

	rec, body := doJSON(t, env, http.MethodPost, "/api/tasks",
		`{"title":"Ship the board","description":"first cut","priority":"high"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	task := body["task"].(map[string]any)
	assert.Equal(t, "Ship the board", task["title"])
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, "high", task["priority"])
	assert.Equal(t, aliceID, task["createdBy"])

	rec, body = doJSON(t, env, http.MethodGet, "/api/tasks/"+task["id"].(string), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ship the board", body["task"].(map[string]any)["title"])
}

func TestTasks_CreateValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := register(t, env, "alice", "a@x.com", "secret123")["token"].(string)

	rec, body := doJSON(t, env, http.MethodPost, "/api/tasks", `{"description":"no title"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", body["message"])

	rec, _ = doJSON(t, env, http.MethodPost, "/api/tasks",
		`{"title":"x","priority":"urgent"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown priority must be rejected")
}

func TestTasks_AssigneeMustExist(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := register(t, env, "alice", "a@x.com", "secret123")["token"].(string)

	rec, body := doJSON(t, env, http.MethodPost, "/api/tasks",
		`{"title":"x","assignedTo":"aaaaaaaaaaaaaaaaaaaaaaaa"}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", body["message"])
}

func TestTasks_MoveAcrossBoard(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := register(t, env, "alice", "a@x.com", "secret123")["token"].(string)

	_, body := doJSON(t, env, http.MethodPost, "/api/tasks", `{"title":"Ship the board"}`, token)
	id := body["task"].(map[string]any)["id"].(string)

	rec, body := doJSON(t, env, http.MethodPatch, "/api/tasks/"+id,
		`{"status":"in-progress"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "in-progress", body["task"].(map[string]any)["status"])

	rec, body = doJSON(t, env, http.MethodPatch, "/api/tasks/"+id, `{"status":"done"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", body["task"].(map[string]any)["status"])

	rec, _ = doJSON(t, env, http.MethodPatch, "/api/tasks/"+id, `{"status":"archived"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown status must be rejected")
}

func TestTasks_FilterByStatus(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := register(t, env, "alice", "a@x.com", "secret123")["token"].(string)

	_, body := doJSON(t, env, http.MethodPost, "/api/tasks", `{"title":"one"}`, token)
	first := body["task"].(map[string]any)["id"].(string)
	doJSON(t, env, http.MethodPost, "/api/tasks", `{"title":"two"}`, token)

	doJSON(t, env, http.MethodPatch, "/api/tasks/"+first, `{"status":"done"}`, token)

	rec, body := doJSON(t, env, http.MethodGet, "/api/tasks?status=done", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "one", tasks[0].(map[string]any)["title"])

	rec, body = doJSON(t, env, http.MethodGet, "/api/tasks", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["tasks"].([]any), 2)
}

func TestTasks_Delete(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := register(t, env, "alice", "a@x.com", "secret123")["token"].(string)

	_, body := doJSON(t, env, http.MethodPost, "/api/tasks", `{"title":"one"}`, token)
	id := body["task"].(map[string]any)["id"].(string)

	rec, body := doJSON(t, env, http.MethodDelete, "/api/tasks/"+id, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task deleted successfully", body["message"])

	rec, body = doJSON(t, env, http.MethodDelete, "/api/tasks/"+id, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Task not found", body["message"])
}
