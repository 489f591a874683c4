package gateway

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/polypuls3/polypulse/query"
)

// path variables
const (
	PathVarChain = "chain"
	PathVarPoll  = "poll"
	PathVarVoter = "voter"
)

// rest routes
const (
	QueryPolls     = "polls"
	QueryPoll      = "poll"
	QueryResults   = "results"
	QueryHasVoted  = "has-voted"
	QueryUserVotes = "user-votes"
)

// RegisterRoutes registers the read routes of the query service with the given router
func RegisterRoutes(svc *query.Service, r *mux.Router) {
	registerQuery := registerQueryHandlerFn(r)
	registerQuery(GetHandlerQueryPolls(svc), QueryPolls, PathVarChain)
	registerQuery(GetHandlerQueryPoll(svc), QueryPoll, PathVarChain, PathVarPoll)
	registerQuery(GetHandlerQueryResults(svc), QueryResults, PathVarChain, PathVarPoll)
	registerQuery(GetHandlerQueryHasVoted(svc), QueryHasVoted, PathVarChain, PathVarPoll, PathVarVoter)
	registerQuery(GetHandlerQueryUserVotes(svc), QueryUserVotes, PathVarChain, PathVarVoter)
}

// registerQueryHandlerFn returns a function that registers GET routes of the form /query/{method}/{pathVar1}/.../{pathVarN}
func registerQueryHandlerFn(r *mux.Router) func(http.HandlerFunc, string, ...string) {
	return func(handler http.HandlerFunc, method string, pathVars ...string) {
		path := fmt.Sprintf("/query/%s", method)
		for _, v := range pathVars {
			path += fmt.Sprintf("/{%s}", v)
		}

		r.HandleFunc(path, handler).Methods(http.MethodGet).Name(method)
	}
}
