// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

const (
	mockBasePath    = "/srm/"
	mockSessionName = "JSESSIONID"
)

// MockSRMAPIServer is an in-memory Spectrum Control REST API used in tests.
// Collections are served as given; nil collections are answered with 404.
type MockSRMAPIServer struct {
	User     string
	Password string

	StorageSystems []byte
	Volumes        []byte
	Pools          []byte
	// SystemVolumes and Performance are keyed by storage system id.
	SystemVolumes map[string][]byte
	Performance   map[string][]byte

	// ContentType overrides the Content-Type of REST responses when set.
	ContentType string
	// FailStatus, when set, is returned for every REST request.
	FailStatus int

	mu       sync.Mutex
	sessions map[string]bool
	seq      int
	logins   int
	requests []*http.Request
}

// ExpireSessions invalidates all issued sessions.
func (m *MockSRMAPIServer) ExpireSessions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = nil
}

// Logins returns the number of successful logins.
func (m *MockSRMAPIServer) Logins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins
}

// Requests returns the REST requests received so far.
func (m *MockSRMAPIServer) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*http.Request(nil), m.requests...)
}

func (m *MockSRMAPIServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch p := r.URL.Path; {
	case p == mockBasePath+urlPathLogin:
		m.serveLogin(w, r)
	case p == mockBasePath:
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Spectrum Control</body></html>"))
	case strings.HasPrefix(p, mockBasePath+urlPathREST+"/"):
		m.serveREST(w, r, strings.TrimPrefix(p, mockBasePath+urlPathREST))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (m *MockSRMAPIServer) serveLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("j_username") != m.User || r.PostForm.Get("j_password") != m.Password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	m.mu.Lock()
	m.seq++
	m.logins++
	id := fmt.Sprintf("session-%d", m.seq)
	if m.sessions == nil {
		m.sessions = make(map[string]bool)
	}
	m.sessions[id] = true
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: mockSessionName, Value: id, Path: mockBasePath})
	http.Redirect(w, r, mockBasePath, http.StatusFound)
}

func (m *MockSRMAPIServer) serveREST(w http.ResponseWriter, r *http.Request, path string) {
	m.mu.Lock()
	m.requests = append(m.requests, r)
	cookie, err := r.Cookie(mockSessionName)
	authorized := err == nil && m.sessions[cookie.Value]
	m.mu.Unlock()

	if !authorized {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if m.FailStatus != 0 {
		w.WriteHeader(m.FailStatus)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body []byte
	switch parts := strings.Split(strings.Trim(path, "/"), "/"); {
	case path == "/StorageSystems/":
		body = m.StorageSystems
	case path == "/Volumes/":
		body = m.Volumes
	case path == "/Pools/":
		body = m.Pools
	case len(parts) == 3 && parts[0] == "StorageSystems" && parts[2] == "Volumes" && strings.HasSuffix(path, "/"):
		body = m.SystemVolumes[parts[1]]
	case len(parts) == 4 && parts[0] == "StorageSystems" && parts[2] == "Volumes" && parts[3] == "Performance":
		q := r.URL.Query()
		if q.Get("metrics") == "" || q.Get("granularity") == "" || q.Get("startTime") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body = m.Performance[parts[1]]
	}

	if body == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ct := m.ContentType
	if ct == "" {
		ct = mediaTypeJSON
	}
	w.Header().Set("Content-Type", ct)
	_, _ = w.Write(body)
}
