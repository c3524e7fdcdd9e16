package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Env(t *testing.T) {
	t.Setenv("HTTP_READ", "15s")
	t.Setenv("HTTP_WRITE", "45s")

	var srv HTTPServer
	require.NoError(t, envconfig.Process("", &srv))
	require.Equal(t, "8080", srv.Port)
	require.Equal(t, 15*time.Second, srv.ReadTimeout)
	require.Equal(t, 45*time.Second, srv.WriteTimeout)
}

func TestProfessor_Profile(t *testing.T) {
	t.Parallel()

	profile, err := Professor{}.Profile()
	require.NoError(t, err)
	require.Equal(t, "Dr. Sarah Johnson", profile.Name)
	require.Len(t, profile.Courses, 3)
	require.Equal(t, "CS201", profile.Courses[1].Code)

	path := filepath.Join(t.TempDir(), "professor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Dr. Alan Turing
courses:
  - code: MATH250
    name: Computability
    semester: Spring 2026
    section: "003"
`), 0o600))

	profile, err = Professor{ProfilePath: path, Department: "Mathematics"}.Profile()
	require.NoError(t, err)
	require.Equal(t, "Dr. Alan Turing", profile.Name)
	require.Equal(t, "sarah.johnson@nyu.edu", profile.Email)
	require.Equal(t, "Mathematics", profile.Department)
	require.Len(t, profile.Courses, 1)
	require.Equal(t, "003", profile.Courses[0].Section)

	_, err = Professor{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml")}.Profile()
	require.Error(t, err)
}
