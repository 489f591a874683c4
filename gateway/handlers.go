package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/polypuls3/polypulse/query"
	"github.com/polypuls3/polypulse/types"
)

// query parameters
const (
	QParamSource   = "source"
	QParamCreator  = "creator"
	QParamStatus   = "status"
	QParamCategory = "category"
	QParamLimit    = "limit"
	QParamOffset   = "offset"
	QParamOption   = "option"
)

// GetHandlerQueryPoll returns a handler to query a poll with its vote counts
func GetHandlerQueryPoll(svc *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, pollID, opts, ok := parsePollRequest(w, r)
		if !ok {
			return
		}

		env := svc.GetPoll(r.Context(), pollID, chainID, opts...)
		if !env.IsError && env.Data == nil {
			writeEnvelope(w, http.StatusNotFound, env)
			return
		}

		writeEnvelope(w, statusOf(env.Err), env)
	}
}

// GetHandlerQueryPolls returns a handler to query a page of polls
func GetHandlerQueryPolls(svc *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, ok := parseChainID(w, r)
		if !ok {
			return
		}

		opts, ok := parseSource(w, r)
		if !ok {
			return
		}

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		env := svc.ListPolls(r.Context(), filters, chainID, opts...)
		writeEnvelope(w, statusOf(env.Err), env)
	}
}

// GetHandlerQueryResults returns a handler to query the tallied results of a poll. Without option
// parameters the option texts are read from the poll first.
func GetHandlerQueryResults(svc *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, pollID, opts, ok := parsePollRequest(w, r)
		if !ok {
			return
		}

		texts := r.URL.Query()[QParamOption]
		if len(texts) == 0 {
			poll := svc.GetPoll(r.Context(), pollID, chainID, opts...)
			switch {
			case poll.IsError:
				writeEnvelope(w, statusOf(poll.Err), poll)
				return
			case poll.Data == nil:
				writeEnvelope(w, http.StatusNotFound, poll)
				return
			}

			texts = poll.Data.OptionTexts()
		}

		env := svc.GetResults(r.Context(), pollID, texts, chainID, opts...)
		writeEnvelope(w, statusOf(env.Err), env)
	}
}

// GetHandlerQueryHasVoted returns a handler to query whether a voter has voted on a poll
func GetHandlerQueryHasVoted(svc *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, pollID, opts, ok := parsePollRequest(w, r)
		if !ok {
			return
		}

		voter, ok := parseVoter(w, r)
		if !ok {
			return
		}

		env := svc.HasVoted(r.Context(), pollID, &voter, chainID, opts...)
		writeEnvelope(w, statusOf(env.Err), env)
	}
}

// GetHandlerQueryUserVotes returns a handler to query the votes cast by a voter
func GetHandlerQueryUserVotes(svc *query.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chainID, ok := parseChainID(w, r)
		if !ok {
			return
		}

		voter, ok := parseVoter(w, r)
		if !ok {
			return
		}

		limit, ok := parseUint64Param(w, r, QParamLimit)
		if !ok {
			return
		}

		offset, ok := parseUint64Param(w, r, QParamOffset)
		if !ok {
			return
		}

		env := svc.ListUserVotes(r.Context(), &voter, chainID, limit, offset)
		writeEnvelope(w, statusOf(env.Err), env)
	}
}

func parsePollRequest(w http.ResponseWriter, r *http.Request) (uint64, math.Uint, []query.Option, bool) {
	chainID, ok := parseChainID(w, r)
	if !ok {
		return 0, math.Uint{}, nil, false
	}

	pollID, ok := parsePollID(w, r)
	if !ok {
		return 0, math.Uint{}, nil, false
	}

	opts, ok := parseSource(w, r)
	if !ok {
		return 0, math.Uint{}, nil, false
	}

	return chainID, pollID, opts, true
}

func parseChainID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	chainID, err := strconv.ParseUint(mux.Vars(r)[PathVarChain], 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "could not parse chain id")
		return 0, false
	}

	return chainID, true
}

func parsePollID(w http.ResponseWriter, r *http.Request) (math.Uint, bool) {
	id, ok := big.NewInt(0).SetString(mux.Vars(r)[PathVarPoll], 10)
	if !ok || id.Sign() < 0 || id.BitLen() > 256 {
		writeErrorResponse(w, http.StatusBadRequest, "could not parse poll id")
		return math.Uint{}, false
	}

	return math.NewUintFromBigInt(id), true
}

func parseVoter(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	voter := mux.Vars(r)[PathVarVoter]
	if !common.IsHexAddress(voter) {
		writeErrorResponse(w, http.StatusBadRequest, "could not parse voter address")
		return common.Address{}, false
	}

	return common.HexToAddress(voter), true
}

func parseSource(w http.ResponseWriter, r *http.Request) ([]query.Option, bool) {
	s := r.URL.Query().Get(QParamSource)
	if s == "" {
		return nil, true
	}

	source, err := types.ParseDataSource(s)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return []query.Option{query.WithSource(source)}, true
}

func parseFilters(w http.ResponseWriter, r *http.Request) (types.PollFilters, bool) {
	var filters types.PollFilters

	if creator := r.URL.Query().Get(QParamCreator); creator != "" {
		if !common.IsHexAddress(creator) {
			writeErrorResponse(w, http.StatusBadRequest, "could not parse creator address")
			return types.PollFilters{}, false
		}

		address := common.HexToAddress(creator)
		filters.Creator = &address
	}

	status, err := types.ParsePollStatus(r.URL.Query().Get(QParamStatus))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return types.PollFilters{}, false
	}
	filters.Status = status
	filters.Category = r.URL.Query().Get(QParamCategory)

	var ok bool
	if filters.Limit, ok = parseUint64Param(w, r, QParamLimit); !ok {
		return types.PollFilters{}, false
	}

	if filters.Offset, ok = parseUint64Param(w, r, QParamOffset); !ok {
		return types.PollFilters{}, false
	}

	return filters, true
}

func parseUint64Param(w http.ResponseWriter, r *http.Request, param string) (uint64, bool) {
	s := r.URL.Query().Get(param)
	if s == "" {
		return 0, true
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("could not parse %s", param))
		return 0, false
	}

	return n, true
}

func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, types.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnsupportedChain):
		return http.StatusNotFound
	case errors.Is(err, types.ErrDataInconsistency):
		return http.StatusConflict
	case errors.Is(err, types.ErrIndexTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func writeEnvelope(w http.ResponseWriter, status int, env json.Marshaler) {
	bz, err := env.MarshalJSON()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bz)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeErrorResponse(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
