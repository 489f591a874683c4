package index

import (
	"context"
	"net/http"

	"github.com/machinebox/graphql"
)

//go:generate moq -out ./mock/client.go -pkg mock . Client

// Request is a GraphQL query document with its variables
type Request struct {
	Query string
	Vars  map[string]interface{}
}

// NewRequest returns a request for the given query document without variables
func NewRequest(query string) *Request {
	return &Request{Query: query, Vars: make(map[string]interface{})}
}

// Var sets a variable of the request
func (r *Request) Var(key string, value interface{}) {
	r.Vars[key] = value
}

// Client runs GraphQL requests against an index endpoint
type Client interface {
	// Run executes the request and decodes the response data into resp
	Run(ctx context.Context, req *Request, resp interface{}) error
}

type graphqlClient struct {
	client *graphql.Client
}

// NewClient returns a GraphQL client for the given index endpoint
func NewClient(url string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return graphqlClient{client: graphql.NewClient(url, graphql.WithHTTPClient(httpClient))}
}

// Run implements Client
func (c graphqlClient) Run(ctx context.Context, req *Request, resp interface{}) error {
	gqlReq := graphql.NewRequest(req.Query)
	for key, value := range req.Vars {
		gqlReq.Var(key, value)
	}

	return c.client.Run(ctx, gqlReq, resp)
}
