package mock

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync"

	"assistant-client/internal/domain/model"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// HandlerFunc answers one mocked route. The returned value is encoded as the
// JSON response body.
type HandlerFunc func(req *http.Request, body []byte) (int, interface{})

// RequestMatcher maps a method and the last path segment of a request to a
// canned handler, so it works whatever base path the server URL carries.
type RequestMatcher struct {
	mu     sync.RWMutex
	routes map[string]HandlerFunc
}

// NewRequestMatcher returns a matcher serving the embedded fixtures.
func NewRequestMatcher() (*RequestMatcher, error) {
	var answer model.AuthorizationAnswer
	if err := loadFixture("auth.json", &answer); err != nil {
		return nil, err
	}
	var rooms model.RoomList
	if err := loadFixture("rooms.json", &rooms); err != nil {
		return nil, err
	}
	var things model.ThingList
	if err := loadFixture("things.json", &things); err != nil {
		return nil, err
	}

	m := &RequestMatcher{routes: make(map[string]HandlerFunc)}
	m.Handle(http.MethodPost, "auth", authHandler(answer))
	m.Handle(http.MethodGet, "rooms", func(*http.Request, []byte) (int, interface{}) {
		return http.StatusOK, rooms
	})
	m.Handle(http.MethodGet, "things", thingsHandler(things))
	m.Handle(http.MethodPost, "messages", messageHandler)
	return m, nil
}

func (m *RequestMatcher) Handle(method, segment string, h HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[routeKey(method, segment)] = h
}

func (m *RequestMatcher) Match(req *http.Request) (HandlerFunc, bool) {
	segment := path.Base(strings.TrimSuffix(req.URL.Path, "/"))
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.routes[routeKey(req.Method, segment)]
	return h, ok
}

func routeKey(method, segment string) string {
	return strings.ToUpper(method) + " " + segment
}

func loadFixture(name string, v interface{}) error {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func errorBody(message string) model.ErrorBody {
	return model.ErrorBody{Status: "ERROR", Message: message}
}

func authHandler(answer model.AuthorizationAnswer) HandlerFunc {
	return func(_ *http.Request, body []byte) (int, interface{}) {
		var authz model.Authorization
		if err := json.Unmarshal(body, &authz); err != nil {
			return http.StatusBadRequest, errorBody("malformed authorization")
		}
		if authz.Login == "" || authz.Password == "" {
			return http.StatusBadRequest, errorBody("login and password are required")
		}
		return http.StatusOK, answer
	}
}

func thingsHandler(all model.ThingList) HandlerFunc {
	return func(req *http.Request, _ []byte) (int, interface{}) {
		room := req.URL.Query().Get("room")
		if room == "" {
			return http.StatusBadRequest, errorBody("room is required")
		}
		out := model.ThingList{Things: []model.Thing{}}
		for _, t := range all.Things {
			if t.Placement == room {
				out.Things = append(out.Things, t)
			}
		}
		return http.StatusOK, out
	}
}

func messageHandler(_ *http.Request, body []byte) (int, interface{}) {
	var msg model.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return http.StatusBadRequest, errorBody("malformed message")
	}
	if msg.Body.Action == "" || msg.Body.ID == "" {
		return http.StatusBadRequest, errorBody("action and id are required")
	}
	return http.StatusOK, msg
}
