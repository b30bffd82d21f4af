package api

import (
	"context"
	"encoding/csv"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactDescribe = `{
	"name": "Contact",
	"fields": [
		{"name": "LastName", "label": "Last Name", "type": "string", "length": 80, "nillable": false, "createable": true},
		{"name": "Email", "label": "Email", "type": "email", "length": 80, "nillable": true, "createable": true},
		{"name": "Level__c", "label": "Level", "type": "picklist", "nillable": true, "createable": true,
			"picklistValues": [
				{"value": "Gold", "label": "Gold", "active": true},
				{"value": "Silver", "label": "Silver", "active": true}
			]}
	],
	"recordTypeInfos": []
}`

func newTestServer() *Server {
	return NewServer(ServerOptions{Port: "0"})
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "OK", string(body))
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/version", nil)
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "sfseed API")
}

func TestGenerateEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/generate?rows=5&seed=42", strings.NewReader(contactDescribe))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 5 rows
	assert.Equal(t, []string{"LastName", "Email", "Level__c"}, records[0])
	for _, row := range records[1:] {
		assert.NotEmpty(t, row[0])
		if row[2] != "" {
			assert.Contains(t, []string{"Gold", "Silver"}, row[2])
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	s := newTestServer()

	fetch := func() string {
		req := httptest.NewRequest("POST", "/generate?rows=3&seed=7", strings.NewReader(contactDescribe))
		resp, err := s.GetApp().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, 200, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, fetch(), fetch())
}

func TestGenerateSkipFields(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/generate?rows=2&skip=Email,Level__c", strings.NewReader(contactDescribe))
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	for _, row := range records[1:] {
		assert.Empty(t, row[1])
		assert.Empty(t, row[2])
	}
}

func TestGenerateRejectsBadRows(t *testing.T) {
	s := newTestServer()

	for _, q := range []string{"rows=0", "rows=-1", "rows=abc", "rows=9999999"} {
		req := httptest.NewRequest("POST", "/generate?"+q, strings.NewReader(contactDescribe))
		resp, err := s.GetApp().Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 400, resp.StatusCode, q)
	}
}

func TestGenerateRejectsBadBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/generate", strings.NewReader("not json"))
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGenerateRejectsEmptySchema(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/generate", strings.NewReader(`{"name": "Empty", "fields": []}`))
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 422, resp.StatusCode)
}

func TestShutdown(t *testing.T) {
	s := newTestServer()
	assert.NoError(t, s.Shutdown(context.Background()))
}
