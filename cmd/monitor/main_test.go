package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestClientRegister(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"created":true}`))
	}))
	defer srv.Close()

	out, err := run(t, "client", "--server", srv.URL, "register", "emp-1", "--name", "Jane")
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":true}`, out)
	assert.Equal(t, map[string]string{"employeeId": "emp-1", "name": "Jane"}, got)
}

func TestClientPush(t *testing.T) {
	shot := filepath.Join(t.TempDir(), "screen.png")
	require.NoError(t, os.WriteFile(shot, []byte("png"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "emp-1", r.FormValue("employeeId"))
		assert.Equal(t, "15", r.FormValue("onTimeMinutes"))
		_, header, err := r.FormFile("screenshot")
		require.NoError(t, err)
		assert.Equal(t, "screen.png", header.Filename)

		w.Write([]byte(`{"success":true,"log":{"id":7,"employee_id":"emp-1","on_time_minutes":15}}`))
	}))
	defer srv.Close()

	out, err := run(t, "client", "--server", srv.URL, "push", "emp-1", "--on-time", "15", "--screenshot", shot)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `"id": 7`), out)
}

func TestClientDelete_InvalidID(t *testing.T) {
	_, err := run(t, "client", "delete", "abc")
	assert.EqualError(t, err, `invalid id "abc"`)
}
