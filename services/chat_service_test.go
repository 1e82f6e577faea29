package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Archismita-Das/HealthifyMe/config"
)

func newChatService(url string) *ChatService {
	return NewChatService(config.ChatConfig{URL: url, TimeoutSeconds: 2})
}

func TestSendPassesBodyThroughOnSuccess(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Drink more water!","intent":"hydration_tip"}`))
	}))
	defer srv.Close()

	result := newChatService(srv.URL + "/chat").Send("how much water should I drink?")

	if result.Outcome != ChatOK {
		t.Fatalf("outcome = %v, want ChatOK (detail: %s)", result.Outcome, result.Detail)
	}
	if received["message"] != "how much water should I drink?" {
		t.Errorf("upstream saw message %q", received["message"])
	}
	if result.Body["reply"] != "Drink more water!" || result.Body["intent"] != "hydration_tip" {
		t.Errorf("body not passed through unchanged: %v", result.Body)
	}
}

func TestSendClassifiesUpstreamClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	result := newChatService(srv.URL + "/chat").Send("hello")

	if result.Outcome != ChatRejected {
		t.Fatalf("outcome = %v, want ChatRejected", result.Outcome)
	}
	if result.Detail == "" {
		t.Error("detail should carry the upstream status and body")
	}
}

func TestSendClassifiesUpstreamServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := newChatService(srv.URL + "/chat").Send("hello")

	if result.Outcome != ChatUnexpected {
		t.Fatalf("outcome = %v, want ChatUnexpected (5xx is not a client rejection)", result.Outcome)
	}
}

func TestSendClassifiesConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	result := newChatService(url + "/chat").Send("hello")

	if result.Outcome != ChatUnreachable {
		t.Fatalf("outcome = %v, want ChatUnreachable", result.Outcome)
	}
	if result.Detail == "" {
		t.Error("detail should name the unreachable endpoint")
	}
}

func TestSendClassifiesInvalidJSONReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	result := newChatService(srv.URL + "/chat").Send("hello")

	if result.Outcome != ChatUnexpected {
		t.Fatalf("outcome = %v, want ChatUnexpected", result.Outcome)
	}
}

func TestHealthyProbesBaseWithoutForwarding(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok, detail := newChatService(srv.URL + "/chat").Healthy()
	if !ok {
		t.Fatalf("Healthy = false, detail: %s", detail)
	}
	if len(paths) != 1 || paths[0] != "/" {
		t.Errorf("probe hit %v, want a single request to the base path", paths)
	}
}

func TestHealthyTreatsErrorStatusAsOffline(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		ok, detail := newChatService(srv.URL + "/chat").Healthy()
		srv.Close()
		if ok {
			t.Errorf("Healthy = true for base status %d, want offline", status)
		}
		if detail == "" {
			t.Errorf("status %d: detail should carry the probe status", status)
		}
	}
}

func TestHealthyReportsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	ok, detail := newChatService(url + "/chat").Healthy()
	if ok {
		t.Fatal("Healthy = true for a closed upstream")
	}
	if detail == "" {
		t.Error("detail should describe the failure")
	}
}
