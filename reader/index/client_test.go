package index_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polypuls3/polypulse/reader/index"
)

func TestClient_Run(t *testing.T) {
	var received struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"poll":{"id":"4","question":"Q?"}}}`))
	}))
	defer server.Close()

	req := index.NewRequest(index.QueryGetPoll)
	req.Var("id", "4")

	var resp struct {
		Poll struct {
			ID       string `json:"id"`
			Question string `json:"question"`
		} `json:"poll"`
	}
	assert.NoError(t, index.NewClient(server.URL, nil).Run(context.Background(), req, &resp))

	assert.Equal(t, index.QueryGetPoll, received.Query)
	assert.Equal(t, map[string]interface{}{"id": "4"}, received.Variables)
	assert.Equal(t, "4", resp.Poll.ID)
	assert.Equal(t, "Q?", resp.Poll.Question)
}

func TestClient_Run_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"indexing error"}]}`))
	}))
	defer server.Close()

	var resp map[string]interface{}
	err := index.NewClient(server.URL, nil).Run(context.Background(), index.NewRequest(index.QueryGetPolls), &resp)
	assert.ErrorContains(t, err, "indexing error")
}
