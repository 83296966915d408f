package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pollchat/internal/app/announce"
	"pollchat/internal/app/chat"
	"pollchat/internal/configs"
	"pollchat/internal/pkg/errs"
)

// envelope mirrors resp.JSONResponse for decoding in tests.
type envelope struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// newTestRouter builds a full router over fresh state with generous rate
// limits and a readable announcement file. Options can mutate the config
// before the router is constructed.
func newTestRouter(t *testing.T, opts ...func(*configs.AppConfig)) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "announcement.txt")
	require.NoError(t, os.WriteFile(path, []byte("Scheduled maintenance at midnight.\n"), 0o644))

	cfg := &configs.AppConfig{
		Environment:      "development",
		Port:             8080,
		AnnouncementPath: path,
		RegisterRate:     1000,
		RegisterBurst:    1000,
		CreateRate:       1000,
		CreateBurst:      1000,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return Router(&AppDeps{
		Coordinator:  chat.NewCoordinator(),
		Announcement: announce.NewReader(cfg.AnnouncementPath),
		Config:       cfg,
	})
}

func postJSON(router http.Handler, path, body string) (*httptest.ResponseRecorder, envelope) {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var env envelope
	_ = json.Unmarshal(recorder.Body.Bytes(), &env)
	return recorder, env
}

func getJSON(router http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	request := httptest.NewRequest(http.MethodGet, path, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var env envelope
	_ = json.Unmarshal(recorder.Body.Bytes(), &env)
	return recorder, env
}

func register(t *testing.T, router http.Handler, username string) {
	t.Helper()

	recorder, env := postJSON(router, "/api/register", fmt.Sprintf(`{"username":%q}`, username))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 0, env.Code)
}

func TestHealthEndpoint(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	recorder, env := getJSON(router, "/health")
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal(0, env.Code)
	req.Equal("ok", env.Data["status"])
}

func TestRegister(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	recorder, env := postJSON(router, "/api/register", `{"username":"alice"}`)
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal(0, env.Code)
	req.Equal("alice", env.Data["username"])

	// A second registration of the same name is a conflict
	recorder, env = postJSON(router, "/api/register", `{"username":"alice"}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Equal(errs.ErrUsernameTaken, env.Code)
}

func TestRegister_BindingAndValidation(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	// Empty username fails validation
	recorder, env := postJSON(router, "/api/register", `{"username":""}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Equal(errs.ErrInvalidParams, env.Code)

	// Unknown fields are rejected by the strict decoder
	recorder, env = postJSON(router, "/api/register", `{"username":"alice","admin":true}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Equal(errs.ErrInvalidJSONFormat, env.Code)

	// Missing Content-Type is refused outright
	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"alice"}`))
	recorder2 := httptest.NewRecorder()
	router.ServeHTTP(recorder2, request)

	var env2 envelope
	req.NoError(json.Unmarshal(recorder2.Body.Bytes(), &env2))
	req.Equal(errs.ErrUnsupportedMediaType, env2.Code)
}

func TestSendAndPoll(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "alice")
	register(t, router, "bob")

	recorder, env := postJSON(router, "/api/send", `{"sender":"alice","recipient":"bob","body":"hi"}`)
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal(0, env.Code)
	req.Equal(float64(1), env.Data["id"])

	recorder, env = getJSON(router, "/api/messages?username=bob")
	req.Equal(http.StatusOK, recorder.Code)

	messages := env.Data["messages"].([]any)
	req.Len(messages, 1)
	msg := messages[0].(map[string]any)
	req.Equal("alice", msg["sender"])
	req.Equal("bob", msg["recipient"])
	req.Equal("hi", msg["body"])

	// Advancing the watermark past the message yields nothing new
	_, env = getJSON(router, "/api/messages?username=bob&last_id=1")
	req.Empty(env.Data["messages"])
}

func TestSend_Failures(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "alice")

	// Missing field
	recorder, env := postJSON(router, "/api/send", `{"sender":"alice","recipient":"bob"}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Equal(errs.ErrInvalidParams, env.Code)

	// Offline recipient
	_, env = postJSON(router, "/api/send", `{"sender":"alice","recipient":"bob","body":"hi"}`)
	req.Equal(errs.ErrRecipientOffline, env.Code)

	// Offline sender
	_, env = postJSON(router, "/api/send", `{"sender":"ghost","recipient":"alice","body":"hi"}`)
	req.Equal(errs.ErrUserNotOnline, env.Code)

	// Room that does not exist
	_, env = postJSON(router, "/api/send", `{"sender":"alice","recipient":"room_9","body":"hi"}`)
	req.Equal(errs.ErrRoomNotFound, env.Code)
}

func TestPoll_Validation(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	_, env := getJSON(router, "/api/messages")
	req.Equal(errs.ErrInvalidParams, env.Code)

	_, env = getJSON(router, "/api/messages?username=ghost")
	req.Equal(errs.ErrUserNotOnline, env.Code)

	register(t, router, "alice")
	_, env = getJSON(router, "/api/messages?username=alice&last_id=banana")
	req.Equal(errs.ErrInvalidParams, env.Code)
}

func TestRoomLifecycle(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "alice")
	register(t, router, "bob")

	recorder, env := postJSON(router, "/api/room/create", `{"admin":"alice","participants":["bob"]}`)
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("room_1", env.Data["roomId"])

	// bob's poll carries the creation notice from the reserved sender
	_, env = getJSON(router, "/api/messages?username=bob")
	messages := env.Data["messages"].([]any)
	req.Len(messages, 1)
	notice := messages[0].(map[string]any)
	req.Equal("server", notice["sender"])
	req.Contains(notice["body"], "Room 1 has been created")

	// Room message fans out to the other member at poll time
	_, env = postJSON(router, "/api/send", `{"sender":"alice","recipient":"room_1","body":"welcome"}`)
	req.Equal(0, env.Code)

	_, env = getJSON(router, "/api/messages?username=bob&last_id=2")
	messages = env.Data["messages"].([]any)
	req.Len(messages, 1)
	req.Equal("welcome", messages[0].(map[string]any)["body"])

	// bob leaves; alice is notified
	recorder, env = postJSON(router, "/api/room/leave", `{"username":"bob","roomId":"room_1"}`)
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal(0, env.Code)

	_, env = getJSON(router, "/api/messages?username=alice&last_id=3")
	messages = env.Data["messages"].([]any)
	req.Len(messages, 1)
	req.Contains(messages[0].(map[string]any)["body"], "bob has left room 1")
}

func TestRoomCreate_Failures(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "alice")

	// Empty participant list fails validation before touching state
	_, env := postJSON(router, "/api/room/create", `{"admin":"alice","participants":[]}`)
	req.Equal(errs.ErrInvalidParams, env.Code)

	// Offline participant aborts with no room created
	_, env = postJSON(router, "/api/room/create", `{"admin":"alice","participants":["ghost"]}`)
	req.Equal(errs.ErrParticipantOffline, env.Code)

	_, env = getJSON(router, "/api/messages?username=alice")
	req.Empty(env.Data["messages"])
}

func TestRoomLeave_Failures(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "alice")
	register(t, router, "bob")

	_, env := postJSON(router, "/api/room/leave", `{"username":"alice","roomId":"room_7"}`)
	req.Equal(errs.ErrRoomNotFound, env.Code)

	_, env = postJSON(router, "/api/room/create", `{"admin":"alice","participants":["alice"]}`)
	req.Equal(0, env.Code)

	_, env = postJSON(router, "/api/room/leave", `{"username":"bob","roomId":"room_1"}`)
	req.Equal(errs.ErrNotRoomMember, env.Code)
}

func TestOnlineAndLogout(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	register(t, router, "bob")
	register(t, router, "alice")

	_, env := getJSON(router, "/api/online")
	req.Equal([]any{"alice", "bob"}, env.Data["onlineUsers"])

	recorder, env := postJSON(router, "/api/logout", `{"username":"alice"}`)
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal(0, env.Code)

	_, env = getJSON(router, "/api/online")
	req.Equal([]any{"bob"}, env.Data["onlineUsers"])

	_, env = postJSON(router, "/api/logout", `{"username":"alice"}`)
	req.Equal(errs.ErrUserNotFound, env.Code)
}

func TestAnnouncement(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	recorder, env := getJSON(router, "/api/announcement")
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("Scheduled maintenance at midnight.", env.Data["announcement"])
}

func TestAnnouncement_UnreadableSource(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, func(cfg *configs.AppConfig) {
		cfg.AnnouncementPath = filepath.Join(t.TempDir(), "absent.txt")
	})

	recorder, env := getJSON(router, "/api/announcement")
	req.Equal(http.StatusInternalServerError, recorder.Code)
	req.Equal(errs.ErrAnnouncementUnavailable, env.Code)
	req.Equal("Failed to read announcement.", env.Message)
}

func TestRegister_RateLimited(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, func(cfg *configs.AppConfig) {
		cfg.RegisterRate = 0.01
		cfg.RegisterBurst = 1
	})

	recorder, _ := postJSON(router, "/api/register", `{"username":"alice"}`)
	req.Equal(http.StatusOK, recorder.Code)

	recorder, env := postJSON(router, "/api/register", `{"username":"bob"}`)
	req.Equal(http.StatusTooManyRequests, recorder.Code)
	req.Equal(errs.ErrRateLimitExceeded, env.Code)
}
