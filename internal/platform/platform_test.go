package platform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeAPI routes "METHOD /path" to canned JSON responses and records every
// request it receives.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]string
	statuses map[string]int
	requests []recordedRequest
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	route := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
	resp, ok := f.routes[route]
	status := f.statuses[route]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no route for ` + route + `"}`))
		return
	}
	if status != 0 {
		w.WriteHeader(status)
	}
	w.Write([]byte(resp))
}

func (f *fakeAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newTestPlatform(t *testing.T, routes map[string]string, opts ...Option) (*Platform, *fakeAPI) {
	t.Helper()

	fake := &fakeAPI{routes: routes, statuses: map[string]int{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := api.New(api.Options{BaseURL: server.URL, Token: "tok"})
	require.NoError(t, err)
	vmClient, err := api.New(api.Options{BaseURL: server.URL + "/vm-api", Token: "tok"})
	require.NoError(t, err)

	return New(client, vmClient, opts...), fake
}

func intPtr(i int) *int { return &i }

func TestListAppsPagination(t *testing.T) {
	for _, key := range []string{"apps", "data", "items", "results"} {
		t.Run(key, func(t *testing.T) {
			p, fake := newTestPlatform(t, map[string]string{
				"GET /v1/apps": `{"` + key + `":[{"name":"one"},{"name":"two"}],"total":2}`,
			})

			out, err := p.Apps.List(context.Background(), &pagination.Request{Page: intPtr(2), PerPage: intPtr(20)})
			require.NoError(t, err)

			reqs := fake.recorded()
			require.Len(t, reqs, 1)
			assert.Equal(t, "/v1/apps", reqs[0].Path)
			assert.Equal(t, "page=2&perPage=20", reqs[0].Query)

			items, ok := out.([]any)
			require.True(t, ok)
			assert.Len(t, items, 2)
		})
	}
}

func TestListPaginationConflictsResolve(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/databases": `[]`,
	})

	_, err := p.Databases.List(context.Background(), &pagination.Request{
		Page: intPtr(1), Offset: intPtr(40), Limit: intPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "limit=10&page=1", fake.recorded()[0].Query)
}

func TestCreateAppValidatesBeforeRequest(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/apps": `{"name":"ab"}`,
	})

	_, err := p.Apps.Create(context.Background(), CreateAppInput{Name: "ab"})

	var verr *toolerr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.CodeAppNameTooShort, verr.Code)
	assert.Empty(t, fake.recorded())
}

func TestCreateApp(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/apps": `{"id":"a1","name":"my-app"}`,
	})

	out, err := p.Apps.Create(context.Background(), CreateAppInput{Name: "my-app", Region: "eu-west"})
	require.NoError(t, err)

	assert.Equal(t, "my-app", out.(map[string]any)["name"])
	assert.JSONEq(t, `{"name":"my-app","region":"eu-west"}`, fake.recorded()[0].Body)
}

func TestAppLifecycleActions(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/apps/my-app/actions/restart": `{"status":"restarting"}`,
		"POST /v1/apps/my-app/actions/resize":  `{"status":"resizing"}`,
	})

	_, err := p.Apps.Restart(context.Background(), "my-app")
	require.NoError(t, err)
	_, err = p.Apps.Resize(context.Background(), "my-app", "performance-2x")
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.JSONEq(t, `{"plan":"performance-2x"}`, reqs[1].Body)

	_, err = p.Apps.Resize(context.Background(), "my-app", "")
	assert.Equal(t, toolerr.CodeMissingRequiredField, toolerr.GetErrorCode(err))
	assert.Len(t, fake.recorded(), 2)
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{})

	_, err := p.Apps.Get(context.Background(), "../teams")
	require.Error(t, err)

	assert.Equal(t, "/v1/apps/..%2Fteams", fake.recorded()[0].Path)
}

func TestDeleteEnvVar(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/apps/my-app/environment-variables": `{"environmentVariables":[
			{"key":"API_KEY","value":"secret"},
			{"key":"API_KEY_2","value":"other"},
			{"key":"NODE_ENV","value":"production"}
		]}`,
		"PUT /v1/apps/my-app/environment-variables": `{}`,
	})

	_, err := p.Env.Delete(context.Background(), "my-app", "API_KEY")
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
	assert.JSONEq(t, `{"environmentVariables":[
		{"key":"API_KEY_2","value":"other"},
		{"key":"NODE_ENV","value":"production"}
	]}`, reqs[1].Body)
}

func TestDeleteMissingEnvVarDoesNotWrite(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/apps/my-app/environment-variables": `[{"key":"NODE_ENV","value":"production"}]`,
	})

	_, err := p.Env.Delete(context.Background(), "my-app", "api_key")

	assert.Equal(t, CodeEnvVarNotFound, toolerr.GetErrorCode(err))
	assert.Len(t, fake.recorded(), 1)
}

func TestSetEnvVar(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/apps/my-app/environment-variables": `{"variables":{"NODE_ENV":"development","PORT":"8080"}}`,
		"PUT /v1/apps/my-app/environment-variables": `{}`,
	})

	_, err := p.Env.Set(context.Background(), "my-app", "NODE_ENV", "production")
	require.NoError(t, err)
	_, err = p.Env.Set(context.Background(), "my-app", "LOG_LEVEL", "debug")
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 4)
	assert.JSONEq(t, `{"environmentVariables":[
		{"key":"NODE_ENV","value":"production"},
		{"key":"PORT","value":"8080"}
	]}`, reqs[1].Body)
	assert.JSONEq(t, `{"environmentVariables":[
		{"key":"NODE_ENV","value":"development"},
		{"key":"PORT","value":"8080"},
		{"key":"LOG_LEVEL","value":"debug"}
	]}`, reqs[3].Body)

	_, err = p.Env.Set(context.Background(), "my-app", "log-level", "debug")
	assert.Equal(t, validation.CodeInvalidEnvKey, toolerr.GetErrorCode(err))
	assert.Len(t, fake.recorded(), 4)
}

func TestDatabaseResolution(t *testing.T) {
	const id = "65a1b2c3d4e5f6a7b8c9d0e1"

	routes := map[string]string{
		"GET /v1/databases": `{"databases":[
			{"id":"` + id + `","hostname":"orders-db.skyport.cloud"},
			{"id":"75a1b2c3d4e5f6a7b8c9d0e1","hostname":"users-db.skyport.cloud"}
		]}`,
		"GET /v1/databases/" + id: `{"database":{"id":"` + id + `","engine":"postgres"}}`,
	}

	t.Run("id is used as is", func(t *testing.T) {
		p, fake := newTestPlatform(t, routes)

		out, err := p.Databases.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "postgres", out.(map[string]any)["engine"])

		reqs := fake.recorded()
		require.Len(t, reqs, 1)
		assert.Equal(t, "/v1/databases/"+id, reqs[0].Path)
	})

	t.Run("hostname is resolved", func(t *testing.T) {
		p, fake := newTestPlatform(t, routes)

		_, err := p.Databases.Get(context.Background(), "orders-db.skyport.cloud")
		require.NoError(t, err)

		reqs := fake.recorded()
		require.Len(t, reqs, 2)
		assert.Equal(t, "/v1/databases", reqs[0].Path)
		assert.Empty(t, reqs[0].Query)
		assert.Equal(t, "/v1/databases/"+id, reqs[1].Path)
	})

	t.Run("unknown hostname", func(t *testing.T) {
		p, fake := newTestPlatform(t, routes)

		_, err := p.Databases.Restart(context.Background(), "missing-db")

		var nf *toolerr.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, CodeDatabaseNotFound, nf.Code)
		assert.NotEmpty(t, nf.Suggestions())
		assert.Len(t, fake.recorded(), 1)
	})

	t.Run("uppercase hex is not an id", func(t *testing.T) {
		p, fake := newTestPlatform(t, routes)

		_, err := p.Databases.Delete(context.Background(), strings.ToUpper(id))
		assert.Equal(t, CodeDatabaseNotFound, toolerr.GetErrorCode(err))
		assert.Equal(t, "/v1/databases", fake.recorded()[0].Path)
	})
}

func TestDatabaseWithoutIDDoesNotResolve(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/databases": `{"databases":[{"hostname":"orders-db.skyport.cloud"}]}`,
	})

	_, err := p.Databases.Get(context.Background(), "orders-db.skyport.cloud")
	assert.Equal(t, CodeDatabaseNotFound, toolerr.GetErrorCode(err))

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/v1/databases", reqs[0].Path)
}

func TestMissingDatabaseIDSuggestsLookup(t *testing.T) {
	const id = "65a1b2c3d4e5f6a7b8c9d0e1"
	p, _ := newTestPlatform(t, map[string]string{})

	_, err := p.Databases.Stop(context.Background(), id)
	assert.Equal(t, api.CodeNotFound, toolerr.GetErrorCode(err))
	assert.Equal(t, databaseHints, toolerr.GetErrorSuggestions(err))

	_, err = p.Apps.Get(context.Background(), "my-app")
	assert.Equal(t, api.CodeNotFound, toolerr.GetErrorCode(err))
	assert.Empty(t, toolerr.GetErrorSuggestions(err))
}

func TestInfrastructureOverview(t *testing.T) {
	routes := map[string]string{
		"GET /v1/apps":      `{"apps":[{"name":"a"},{"name":"b"}]}`,
		"GET /v1/databases": `{"databases":[{"id":"d"}]}`,
		"GET /v1/buckets":   `[]`,
	}

	p, _ := newTestPlatform(t, routes)

	out, err := p.Account.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2 apps, 1 database, 0 buckets", out.Summary)
	assert.Len(t, out.Apps, 2)

	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"buckets":[]`)
}

func TestInfrastructureOverviewFailsAsAWhole(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/apps":      `{"apps":[]}`,
		"GET /v1/databases": `{"message":"down"}`,
		"GET /v1/buckets":   `[]`,
	})
	fake.statuses["GET /v1/databases"] = http.StatusServiceUnavailable

	out, err := p.Account.Overview(context.Background())
	assert.Nil(t, out)
	assert.Equal(t, api.CodeServiceUnavailable, toolerr.GetErrorCode(err))
}

func TestUploadObject(t *testing.T) {
	files := fstest.MapFS{
		"site/index.html": &fstest.MapFile{Data: []byte("<h1>hi</h1>")},
	}
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/buckets/assets/objects": `{"key":"index.html","size":11}`,
	}, WithFiles(files))

	out, err := p.Storage.Upload(context.Background(), UploadInput{Bucket: "assets", File: "site/index.html"})
	require.NoError(t, err)
	assert.Equal(t, "index.html", out.(map[string]any)["key"])

	body := fake.recorded()[0].Body
	assert.Contains(t, body, `name="key"`)
	assert.Contains(t, body, `filename="index.html"`)
	assert.Contains(t, body, "<h1>hi</h1>")

	_, err = p.Storage.Upload(context.Background(), UploadInput{Bucket: "assets", File: "missing.txt"})
	assert.Error(t, err)
	assert.Len(t, fake.recorded(), 1)
}

func TestDeleteObjectSendsKeyAsQuery(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"DELETE /v1/buckets/assets/objects": ``,
	})

	_, err := p.Storage.DeleteObject(context.Background(), "assets", "img/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "key=img%2Flogo.png", fake.recorded()[0].Query)
}

func TestVMsUseVMBaseURL(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /vm-api/vm":            `{"vms":[{"id":"vm1"}]}`,
		"POST /vm-api/vm/vm1/start": `{"status":"starting"}`,
	})

	out, err := p.VMs.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = p.VMs.Start(context.Background(), "vm1")
	require.NoError(t, err)
	assert.Equal(t, "/vm-api/vm/vm1/start", fake.recorded()[1].Path)
}

func TestDNSRecordValidation(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/domains/example.com/records": `{"id":"r1"}`,
	})

	_, err := p.DNS.CreateRecord(context.Background(), "example.com", DNSRecordInput{Type: "BOGUS", Name: "www", Value: "1.2.3.4"})
	assert.Equal(t, validation.CodeInvalidDNSRecordType, toolerr.GetErrorCode(err))

	_, err = p.DNS.CreateRecord(context.Background(), "not a domain", DNSRecordInput{Type: "A", Name: "www", Value: "1.2.3.4"})
	assert.Equal(t, validation.CodeInvalidDomainName, toolerr.GetErrorCode(err))
	assert.Empty(t, fake.recorded())

	_, err = p.DNS.CreateRecord(context.Background(), "example.com", DNSRecordInput{Type: "cname", Name: "www", Value: "app.skyport.cloud"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"CNAME","name":"www","value":"app.skyport.cloud"}`, fake.recorded()[0].Body)
}

func TestAddDomainValidates(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"POST /v1/domains": `{"name":"example.com"}`,
	})

	_, err := p.Domains.Add(context.Background(), "-bad-.com", "")
	assert.Equal(t, validation.CodeInvalidDomainName, toolerr.GetErrorCode(err))

	_, err = p.Domains.Add(context.Background(), "example.com", "my-app")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"example.com","app":"my-app"}`, fake.recorded()[0].Body)
}

func TestDiskSizeMustBePositive(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{})

	_, err := p.Disks.Create(context.Background(), "my-app", CreateDiskInput{Name: "data", SizeGB: 0})
	assert.Equal(t, toolerr.CodeInvalidArguments, toolerr.GetErrorCode(err))
	assert.Empty(t, fake.recorded())
}

func TestPlansFilterByType(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/plans": `{"plans":[{"slug":"db-small"}]}`,
	})

	out, err := p.Plans.List(context.Background(), "database")
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "type=database", fake.recorded()[0].Query)
}

func TestObservabilityQuery(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{
		"GET /v1/apps/my-app/logs": `{"logs":["line"]}`,
	})

	_, err := p.Observability.Logs(context.Background(), "my-app", LogsInput{Lines: intPtr(50), Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, "level=error&lines=50", fake.recorded()[0].Query)
}

func TestUpdateSettingsRequiresFields(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]string{})

	_, err := p.Settings.Update(context.Background(), "my-app", map[string]any{})
	assert.Equal(t, toolerr.CodeInvalidArguments, toolerr.GetErrorCode(err))
	assert.Empty(t, fake.recorded())
}
