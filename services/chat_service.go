package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Archismita-Das/HealthifyMe/config"
)

// ChatOutcome classifies one forwarding attempt. The three failure
// kinds are kept apart so the UI can tell "the bot said something went
// wrong" from "the bot is down" from "our own bridge broke".
type ChatOutcome int

const (
	ChatOK ChatOutcome = iota
	ChatRejected    // upstream answered with a client-error status
	ChatUnreachable // connection refused, timeout, DNS failure
	ChatUnexpected  // anything else
)

// ChatResult is the normalized outcome of forwarding one message.
type ChatResult struct {
	Outcome ChatOutcome
	Body    map[string]interface{} // upstream reply, passed through unchanged on success
	Detail  string
}

// ChatService forwards user messages to the external conversational
// service. Calls are synchronous and carry a bounded timeout.
type ChatService struct {
	url    string
	client *http.Client
}

func NewChatService(cfg config.ChatConfig) *ChatService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ChatService{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *ChatService) URL() string { return s.url }

// Send posts {"message": ...} to the chat endpoint and classifies the
// outcome. It never returns an error: every failure is folded into the
// result so the caller can always render a response.
func (s *ChatService) Send(message string) ChatResult {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return ChatResult{Outcome: ChatUnexpected, Detail: err.Error()}
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return ChatResult{Outcome: ChatUnexpected, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("chat service unreachable at %s: %v", s.url, err)
		return ChatResult{
			Outcome: ChatUnreachable,
			Detail:  fmt.Sprintf("connection failed to %s", s.url),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResult{Outcome: ChatUnexpected, Detail: err.Error()}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var reply map[string]interface{}
		if err := json.Unmarshal(body, &reply); err != nil {
			return ChatResult{
				Outcome: ChatUnexpected,
				Detail:  fmt.Sprintf("invalid JSON from chat service: %v", err),
			}
		}
		return ChatResult{Outcome: ChatOK, Body: reply}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		log.Printf("chat service rejected request: %d %s", resp.StatusCode, string(body))
		return ChatResult{
			Outcome: ChatRejected,
			Detail:  fmt.Sprintf("chat service error %d: %s", resp.StatusCode, string(body)),
		}
	default:
		log.Printf("unexpected chat service status: %d %s", resp.StatusCode, string(body))
		return ChatResult{
			Outcome: ChatUnexpected,
			Detail:  fmt.Sprintf("unexpected status %d from chat service", resp.StatusCode),
		}
	}
}

// Healthy probes the base of the chat endpoint without forwarding a
// message. A non-2xx answer counts as offline just like a failed
// connection; the body is ignored either way.
func (s *ChatService) Healthy() (bool, string) {
	base := strings.TrimSuffix(s.url, "/chat") + "/"
	resp, err := s.client.Get(base)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Sprintf("health probe returned status %d", resp.StatusCode)
	}
	return true, ""
}
