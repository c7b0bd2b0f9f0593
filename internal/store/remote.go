package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ProxyPath is the server endpoint queries are shipped to.
const ProxyPath = "/api/db"

type proxyRequest struct {
	Query  string `json:"query"`
	Params []any  `json:"params"`
}

type proxyResponse struct {
	Data []Row `json:"data"`
}

// Remote ships commands to the proxy endpoint as {query, params} JSON.
// Transport failures (network errors, non-2xx responses) are never raised
// to the caller: the command re-executes against the local emulation store
// instead, so a dead backend degrades to last-known data rather than an
// error page. Successful product/category writes are replayed into the
// local store to keep that fallback state current.
type Remote struct {
	baseURL string
	httpc   *http.Client
	local   *Local
	log     *logrus.Logger
}

func NewRemote(baseURL string, local *Local, log *logrus.Logger) *Remote {
	return &Remote{
		baseURL: baseURL,
		httpc:   &http.Client{},
		local:   local,
		log:     log,
	}
}

func (r *Remote) Exec(ctx context.Context, cmd Command) ([]Row, error) {
	query, params, err := BuildSQL(cmd)
	if err != nil {
		return nil, err
	}

	rows, err := r.post(ctx, query, params)
	if err != nil {
		r.log.WithError(err).WithField("query", query).
			Warn("remote query failed, falling back to local store")
		return r.local.Exec(ctx, cmd)
	}

	if Mutating(cmd) {
		r.local.Sync(ctx, cmd, rows)
	}
	return rows, nil
}

func (r *Remote) post(ctx context.Context, query string, params []any) ([]Row, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(proxyRequest{Query: query, Params: params})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+ProxyPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("proxy returned status %d", resp.StatusCode)
	}

	var out proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []Row{}
	}
	return out.Data, nil
}
