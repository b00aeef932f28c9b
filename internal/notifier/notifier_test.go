package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitual/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withConfigDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	old := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return tempDir, nil }
	t.Cleanup(func() { userConfigDirFunc = old })
	return tempDir
}

func withProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
	t.Cleanup(func() { findProcessFunc = old })
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := withConfigDir(t)

	expectedDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	if err := os.MkdirAll(expectedDefault, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/habitual/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(expectedDefault, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err != ErrTrayNotRunning {
		t.Errorf("expected ErrTrayNotRunning for missing lockfile, got %v", err)
	}

	bad := map[string]string{
		"two parts":      "8080|12345",
		"garbage":        "invalid",
		"empty secret":   "8080|12345|",
		"empty port":     "|12345|secret",
		"port range":     "99999|12345|secret",
		"non numeric id": "8080|abc|secret",
	}
	for name, content := range bad {
		t.Run(name, func(t *testing.T) {
			if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
				t.Errorf("expected error for %q", content)
			}
		})
	}

	if err := os.WriteFile(lockfilePath, []byte("8080|12345|testsecret123"), 0644); err != nil {
		t.Fatal(err)
	}

	withProcess(t, "")
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing process")
	}

	withProcess(t, "other-app")
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for wrong executable")
	}

	withProcess(t, "habitual-tray")
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "8080" || secret != "testsecret123" {
		t.Errorf("got port=%s secret=%s", port, secret)
	}
}

func TestNotifyDeliversPayload(t *testing.T) {
	var got WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Habitual-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	configDir := withConfigDir(t)
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%s|4242|test-secret", port)
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0644); err != nil {
		t.Fatal(err)
	}
	withProcess(t, "habitual-tray")

	if err := Check(); err != nil {
		t.Fatalf("expected tray to be available: %v", err)
	}
	if err := New().Notify(constants.TimerDoneTitle, constants.TimerDoneBody); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if got.Title != constants.TimerDoneTitle || got.Text != constants.TimerDoneBody {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.DurationMs != constants.NotificationDurationMs {
		t.Errorf("expected duration %d, got %d", constants.NotificationDurationMs, got.DurationMs)
	}
}

func TestSendFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Habitual-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	n := New()
	if err := n.send(port, "wrong", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := n.send(port, "test-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for server failure")
	}
}

func TestCheckWithoutTray(t *testing.T) {
	withConfigDir(t)
	if err := Check(); err != ErrTrayNotRunning {
		t.Errorf("expected ErrTrayNotRunning, got %v", err)
	}
	if err := New().Notify("title", "body"); err != ErrTrayNotRunning {
		t.Errorf("expected Notify to fail with ErrTrayNotRunning, got %v", err)
	}
}
