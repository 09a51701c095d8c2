package gateway

import (
	"bytes"
	"context"
	b64 "encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
	"github.com/teamgen/cli/uuid"
	"go.uber.org/zap"
)

const (
	BUILD_API_VERSION             = "2.0"
	PROJECT_API_VERSION           = "1.0"
	RELEASE_API_VERSION           = "3.0-preview.3"
	DISTRIBUTED_TASK_API_VERSION  = "3.0-preview.1"
	SERVICE_ENDPOINTS_API_VERSION = "3.0-preview.1"

	SESSION_HEADER = "X-TFS-Session"
)

type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

type Gateway struct {
	httpClient *http.Client
	logger     *zap.Logger
	session    string
}

func New(opts Options) *Gateway {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	httpClient := &http.Client{
		Timeout: opts.Timeout,
		// redirects lead to the sign-in page
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &Gateway{
		httpClient: httpClient,
		logger:     opts.Logger,
		session:    uuid.NewSessionID(),
	}
}

// EncodePat turns a personal access token into the Basic credential the REST
// API expects: base64 of ":" followed by the token.
func EncodePat(pat string) string {
	return b64.StdEncoding.EncodeToString([]byte(":" + pat))
}

func NewAccount(accountURL string, pat string) *entity.Account {
	return &entity.Account{
		URL:   strings.TrimRight(accountURL, "/"),
		Token: EncodePat(pat),
	}
}

type Request struct {
	g      *Gateway
	ctx    context.Context
	method string
	url    string
	token  string
	query  url.Values
	body   interface{}
	lookup string
}

type serverError struct {
	Message string `json:"message"`
}

// NewRequest addresses path relative to the account URL. A path that is
// already an absolute URL, such as an operation link, is used as is.
func (g *Gateway) NewRequest(ctx context.Context, method string, account *entity.Account, path string) *Request {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = fmt.Sprintf("%s/%s", strings.TrimRight(account.URL, "/"), strings.TrimLeft(path, "/"))
	}
	return &Request{
		g:      g,
		ctx:    ctx,
		method: method,
		url:    target,
		token:  account.Token,
		query:  url.Values{},
	}
}

func (r *Request) Query(key string, value string) *Request {
	r.query.Set(key, value)
	return r
}

func (r *Request) Body(body interface{}) *Request {
	r.body = body
	return r
}

// Lookup marks the request as an entity lookup: a 404 becomes a NotFound
// error carrying the formatted message.
func (r *Request) Lookup(format string, args ...interface{}) *Request {
	r.lookup = fmt.Sprintf(format, args...)
	return r
}

func (r *Request) Run(resp interface{}) error {
	var requestBody io.Reader
	if r.body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r.body); err != nil {
			return errors.Wrap(err, "encode body")
		}
		requestBody = &buf
	}

	target := r.url
	if len(r.query) > 0 {
		target = fmt.Sprintf("%s?%s", target, r.query.Encode())
	}

	req, err := http.NewRequestWithContext(r.ctx, r.method, target, requestBody)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", r.token))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(SESSION_HEADER, r.g.session)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := r.g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return err
	}

	r.g.logger.Debug("team services request",
		zap.String("method", r.method),
		zap.String("url", r.url),
		zap.Int("status", res.StatusCode),
	)

	if err := r.checkStatus(res, buf.Bytes()); err != nil {
		return err
	}

	if resp == nil || buf.Len() == 0 {
		return nil
	}
	if err := json.NewDecoder(&buf).Decode(resp); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// checkStatus validates the response before the body is parsed. Only a
// redirect body is ever read here, and only when it holds a JSON error.
func (r *Request) checkStatus(res *http.Response, body []byte) error {
	switch {
	case res.StatusCode == http.StatusNonAuthoritativeInfo:
		// the service answers with its sign-in page
		return teamerrors.ErrAuthenticationFailed
	case res.StatusCode == http.StatusNotFound && r.lookup != "":
		return teamerrors.NotFound("%s", r.lookup)
	case res.StatusCode >= 400:
		return teamerrors.RequestFailed(res.StatusCode, statusText(res))
	case res.StatusCode >= 300:
		var e serverError
		if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
			return teamerrors.RequestFailed(res.StatusCode, e.Message)
		}
		return teamerrors.RequestFailed(res.StatusCode, statusText(res))
	}
	return nil
}

func statusText(res *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if text == "" {
		return http.StatusText(res.StatusCode)
	}
	return text
}
