package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/gateway"
	"go.uber.org/zap"
)

// fakeTFS serves the subset of the Team Services REST API the controller
// talks to, backed by in-memory lists.
type fakeTFS struct {
	t   *testing.T
	url string

	mu        sync.Mutex
	calls     []string
	failures  map[string]int
	projects  map[string]*entity.TeamProject
	pending   string
	statuses  []string
	queues    []*entity.AgentQueue
	pools     []*entity.AgentPool
	endpoints []*entity.ServiceEndpoint
	builds    []*entity.BuildDefinition
	releases  []*entity.ReleaseDefinition
	bodies    map[string][]map[string]interface{}
}

func newFakeTFS(t *testing.T) *fakeTFS {
	t.Helper()
	f := &fakeTFS{
		t:        t,
		failures: map[string]int{},
		projects: map[string]*entity.TeamProject{},
		bodies:   map[string][]map[string]interface{}{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /_apis/projects/{name}", f.getProject)
	mux.HandleFunc("POST /_apis/projects", f.createProject)
	mux.HandleFunc("GET /_apis/operations/{id}", f.checkStatus)
	mux.HandleFunc("GET /_apis/distributedtask/pools", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, f.pools)
	})
	mux.HandleFunc("GET /{project}/_apis/distributedtask/queues", f.getQueues)
	mux.HandleFunc("GET /{project}/_apis/distributedtask/serviceendpoints", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, f.endpoints)
	})
	mux.HandleFunc("POST /{project}/_apis/distributedtask/serviceendpoints", f.createEndpoint)
	mux.HandleFunc("GET /{project}/_apis/build/definitions", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, f.builds)
	})
	mux.HandleFunc("POST /{project}/_apis/build/definitions", f.createBuild)
	mux.HandleFunc("GET /{project}/_apis/release/definitions", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, f.releases)
	})
	mux.HandleFunc("POST /{project}/_apis/release/definitions", f.createRelease)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls = append(f.calls, key)
		status, fail := f.failures[key]
		f.mu.Unlock()
		if fail {
			w.WriteHeader(status)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	f.url = server.URL
	return f
}

func (f *fakeTFS) account() *entity.Account {
	return gateway.NewAccount(f.url, "pat")
}

func (f *fakeTFS) controller() *Controller {
	return New(Options{
		Gateway:      gateway.New(gateway.Options{Timeout: 5 * time.Second}),
		Installer:    &recordingRunner{},
		Logger:       zap.NewNop(),
		PollInterval: time.Millisecond,
		PollTimeout:  200 * time.Millisecond,
		OpenURL:      func(string) error { return nil },
	})
}

func (f *fakeTFS) called(method string, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method+" "+path {
			n++
		}
	}
	return n
}

func (f *fakeTFS) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeTFS) write(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeTFS) list(w http.ResponseWriter, v interface{}) {
	f.write(w, map[string]interface{}{"count": 0, "value": v})
}

func (f *fakeTFS) decode(r *http.Request, kind string, v interface{}) map[string]interface{} {
	b, err := io.ReadAll(r.Body)
	assert.NoError(f.t, err)
	var body map[string]interface{}
	assert.NoError(f.t, json.Unmarshal(b, &body))
	f.bodies[kind] = append(f.bodies[kind], body)
	if v != nil {
		assert.NoError(f.t, json.Unmarshal(b, v))
	}
	return body
}

func (f *fakeTFS) getProject(w http.ResponseWriter, r *http.Request) {
	project, ok := f.projects[r.PathValue("name")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.write(w, project)
}

func (f *fakeTFS) createProject(w http.ResponseWriter, r *http.Request) {
	body := f.decode(r, "project", nil)
	f.pending = body["name"].(string)
	f.write(w, &entity.Operation{
		ID:     "op",
		Status: entity.OperationQueued,
		URL:    f.url + "/_apis/operations/op",
	})
}

func (f *fakeTFS) checkStatus(w http.ResponseWriter, r *http.Request) {
	status := entity.OperationInProgress
	if len(f.statuses) > 0 {
		status, f.statuses = f.statuses[0], f.statuses[1:]
	}
	if status == entity.OperationSucceeded {
		f.projects[f.pending] = &entity.TeamProject{ID: "1", Name: f.pending}
	}
	f.write(w, &entity.Operation{ID: r.PathValue("id"), Status: status})
}

func (f *fakeTFS) getQueues(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("queueName")
	queues := []*entity.AgentQueue{}
	for _, q := range f.queues {
		if q.Name == name {
			queues = append(queues, q)
		}
	}
	f.list(w, queues)
}

func (f *fakeTFS) createEndpoint(w http.ResponseWriter, r *http.Request) {
	var ep entity.ServiceEndpoint
	f.decode(r, "endpoint", &ep)
	ep.ID = fmt.Sprintf("endpoint-%d", len(f.endpoints)+1)
	f.endpoints = append(f.endpoints, &ep)
	f.write(w, &ep)
}

func (f *fakeTFS) createBuild(w http.ResponseWriter, r *http.Request) {
	body := f.decode(r, "build", nil)
	build := &entity.BuildDefinition{ID: len(f.builds) + 1, Name: body["name"].(string)}
	f.builds = append(f.builds, build)
	f.write(w, build)
}

func (f *fakeTFS) createRelease(w http.ResponseWriter, r *http.Request) {
	body := f.decode(r, "release", nil)
	release := &entity.ReleaseDefinition{ID: len(f.releases) + 1, Name: body["name"].(string)}
	f.releases = append(f.releases, release)
	f.write(w, release)
}

// lastBody returns the JSON of the last created resource of kind.
func (f *fakeTFS) lastBody(kind string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	bodies := f.bodies[kind]
	require.NotEmpty(f.t, bodies)
	b, err := json.Marshal(bodies[len(bodies)-1])
	require.NoError(f.t, err)
	return string(b)
}
