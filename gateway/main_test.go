package gateway

import (
	"context"
	b64 "encoding/base64"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *entity.Account) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	g := New(Options{Timeout: 5 * time.Second, Logger: zap.NewNop()})
	return g, NewAccount(server.URL+"/", "abc")
}

func TestEncodePatRoundTrip(t *testing.T) {
	decoded, err := b64.StdEncoding.DecodeString(EncodePat("abc"))
	require.NoError(t, err)
	assert.Equal(t, ":abc", string(decoded))
}

func TestNewDefaults(t *testing.T) {
	g := New(Options{})
	assert.Equal(t, 30*time.Second, g.httpClient.Timeout)
	assert.NotEmpty(t, g.session)
}

func TestRequestHeaders(t *testing.T) {
	g, account := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic "+EncodePat("abc"), r.Header.Get("Authorization"))
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(SESSION_HEADER))
		assert.Equal(t, "/_apis/projects/TeamProject", r.URL.Path)
		assert.Equal(t, PROJECT_API_VERSION, r.URL.Query().Get("api-version"))
		w.Write([]byte(`{"id": "1", "name": "TeamProject"}`))
	})

	project, err := g.GetProject(context.Background(), account, "TeamProject")
	require.NoError(t, err)
	assert.Equal(t, "1", project.ID)
	assert.Equal(t, "TeamProject", project.Name)
}

func TestStatusHandling(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		header map[string]string
		lookup bool
		check  func(t *testing.T, err error)
	}{
		{
			name:   "203 is an authentication failure",
			status: http.StatusNonAuthoritativeInfo,
			body:   "<html>Sign in</html>",
			check: func(t *testing.T, err error) {
				assert.True(t, teamerrors.IsAuthenticationFailed(err))
				assert.Contains(t, err.Error(), "Check account name and personal access token.")
			},
		},
		{
			name:   "404 on a lookup is NotFound",
			status: http.StatusNotFound,
			body:   "<html>missing</html>",
			lookup: true,
			check: func(t *testing.T, err error) {
				assert.True(t, teamerrors.IsNotFound(err))
				assert.EqualError(t, err, "missing thing")
			},
		},
		{
			name:   "404 on a list is a failed request",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.False(t, teamerrors.IsNotFound(err))
				assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)
			},
		},
		{
			name:   "500 with an html body carries the status text",
			status: http.StatusInternalServerError,
			body:   "<html>boom</html>",
			check: func(t *testing.T, err error) {
				var tsErr *teamerrors.TeamServicesError
				require.True(t, stderrors.As(err, &tsErr))
				assert.Equal(t, teamerrors.CodeRequestFailed, tsErr.Code)
				assert.Equal(t, "Internal Server Error", tsErr.Message)
			},
		},
		{
			name:   "redirect with a json error is not followed",
			status: http.StatusFound,
			body:   `{"message": "TF400813: not authorized"}`,
			header: map[string]string{"Location": "/_signin"},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "TF400813: not authorized")
			},
		},
		{
			name:   "redirect without a json error",
			status: http.StatusFound,
			body:   "<html>moved</html>",
			header: map[string]string{"Location": "/_signin"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)
				assert.EqualError(t, err, "Found")
			},
		},
		{
			name:   "malformed body on success is a decode error",
			status: http.StatusOK,
			body:   "<html>",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decoding response")
				assert.False(t, teamerrors.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, account := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/_signin" {
					t.Errorf("redirect was followed")
				}
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			req := g.NewRequest(context.Background(), http.MethodGet, account, "thing")
			if tt.lookup {
				req.Lookup("missing %s", "thing")
			}
			var resp map[string]interface{}
			err := req.Run(&resp)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestTransportErrorsPassThrough(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	account := NewAccount(server.URL, "abc")
	server.Close()

	_, err := New(Options{}).GetProject(context.Background(), account, "TeamProject")
	require.Error(t, err)

	var tsErr *teamerrors.TeamServicesError
	assert.False(t, stderrors.As(err, &tsErr))
}

func TestCancelledContext(t *testing.T) {
	g, account := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GetProject(ctx, account, "TeamProject")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAbsoluteOperationURL(t *testing.T) {
	g, _ := newTestGateway(t, nil)
	req := g.NewRequest(context.Background(), http.MethodGet, &entity.Account{URL: "https://demo.visualstudio.com"}, "https://demo.visualstudio.com/_apis/operations/42")
	assert.Equal(t, "https://demo.visualstudio.com/_apis/operations/42", req.url)

	req = g.NewRequest(context.Background(), http.MethodGet, &entity.Account{URL: "https://demo.visualstudio.com/"}, "/_apis/projects")
	assert.Equal(t, "https://demo.visualstudio.com/_apis/projects", req.url)
}

func TestReleaseAccount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://demo.visualstudio.com", want: "https://demo.vsrm.visualstudio.com"},
		{in: "https://demo.vsrm.visualstudio.com", want: "https://demo.vsrm.visualstudio.com"},
		{in: "http://tfs:8080/tfs/DefaultCollection", want: "http://tfs:8080/tfs/DefaultCollection"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := releaseAccount(&entity.Account{URL: tt.in, Token: "t"})
			assert.Equal(t, tt.want, got.URL)
			assert.Equal(t, "t", got.Token)
		})
	}
}

func TestCreateWithEmptyBody(t *testing.T) {
	g, account := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	build, err := g.CreateBuildDefinition(ctx, account, "1", []byte(`{}`))
	assert.Nil(t, build)
	assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)
	assert.EqualError(t, err, "Team Services returned no build definition")

	release, err := g.CreateReleaseDefinition(ctx, account, "Demo", []byte(`{}`))
	assert.Nil(t, release)
	assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)

	ep, err := g.CreateServiceEndpoint(ctx, account, "1", &entity.ServiceEndpoint{Name: "Docker"})
	assert.Nil(t, ep)
	assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)

	op, err := g.CreateProject(ctx, account, &entity.CreateProjectRequest{Name: "Demo"})
	assert.Nil(t, op)
	assert.ErrorIs(t, err, teamerrors.ErrRequestFailed)
}
