package server

import (
	gaugev1 "GaugeLedger/gen/go/gaugeledger/v1"
	"context"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewGatewayMux exposes the gauge service as HTTP/JSON, proxying each route
// to svc.
func NewGatewayMux(svc gaugev1.GaugeServiceClient) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux()

	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{"POST", "/v1/commands", route(mux, svc.Submit, bindBody[gaugev1.SubmitRequest])},
		{"POST", "/v1/rewards/deposit", route(mux, svc.Deposit, bindBody[gaugev1.DepositRequest])},
		{"POST", "/v1/accounts/{account}/claim-all", route(mux, svc.ClaimAll, bindClaimAll)},

		{"GET", "/v1/positions/{position_id}/pending", route(mux, svc.PendingRewards, bindPending)},
		{"GET", "/v1/positions/{position_id}/entry", route(mux, svc.RewardEntry, bindEntry)},
		{"GET", "/v1/owners/{owner}/stakes", route(mux, svc.Stakes, bindStakes)},
		{"GET", "/v1/owners/{owner}/claims", route(mux, svc.ClaimHistory, bindClaims)},
		{"GET", "/v1/schedule", route(mux, svc.Schedule, nil)},
		{"GET", "/v1/balances/{asset}/{holder}", route(mux, svc.Balance, bindBalance)},
		{"GET", "/v1/rates", route(mux, svc.RateHistory, bindRates)},

		{"POST", "/v1/admin/snapshot", route(mux, svc.TakeSnapshot, nil)},
		{"GET", "/v1/admin/integrity", route(mux, svc.VerifyIntegrity, nil)},
		{"POST", "/v1/admin/projections/rebuild", route(mux, svc.RebuildProjections, nil)},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, err
		}
	}
	return mux, nil
}

func route[Req, Resp any](
	mux *runtime.ServeMux,
	call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error),
	bind func(r *http.Request, params map[string]string, inbound runtime.Marshaler, req *Req) error,
) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		ctx := r.Context()
		inbound, outbound := runtime.MarshalerForRequest(mux, r)

		req := new(Req)
		if bind != nil {
			if err := bind(r, params, inbound, req); err != nil {
				runtime.HTTPError(ctx, mux, outbound, w, r, err)
				return
			}
		}

		resp, err := call(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		data, err := outbound.Marshal(resp)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.Internal, "marshal: %v", err))
			return
		}
		w.Header().Set("Content-Type", outbound.ContentType(resp))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func bindBody[Req any](r *http.Request, _ map[string]string, inbound runtime.Marshaler, req *Req) error {
	if err := inbound.NewDecoder(r.Body).Decode(req); err != nil {
		return status.Errorf(codes.InvalidArgument, "decode body: %v", err)
	}
	return nil
}

func bindClaimAll(r *http.Request, params map[string]string, inbound runtime.Marshaler, req *gaugev1.ClaimAllRequest) error {
	if err := bindBody(r, params, inbound, req); err != nil {
		return err
	}
	req.Account = params["account"]
	return nil
}

func bindPending(r *http.Request, params map[string]string, _ runtime.Marshaler, req *gaugev1.PendingRewardsRequest) error {
	id, err := uintParam("position_id", params["position_id"])
	if err != nil {
		return err
	}
	req.PositionId = id
	if at := r.URL.Query().Get("at"); at != "" {
		if req.At, err = uintParam("at", at); err != nil {
			return err
		}
	}
	return nil
}

func bindEntry(_ *http.Request, params map[string]string, _ runtime.Marshaler, req *gaugev1.RewardEntryRequest) error {
	id, err := uintParam("position_id", params["position_id"])
	req.PositionId = id
	return err
}

func bindStakes(_ *http.Request, params map[string]string, _ runtime.Marshaler, req *gaugev1.StakesRequest) error {
	req.Owner = params["owner"]
	return nil
}

func bindClaims(_ *http.Request, params map[string]string, _ runtime.Marshaler, req *gaugev1.ClaimHistoryRequest) error {
	req.Owner = params["owner"]
	return nil
}

func bindBalance(_ *http.Request, params map[string]string, _ runtime.Marshaler, req *gaugev1.BalanceRequest) error {
	req.Asset = params["asset"]
	req.Holder = params["holder"]
	return nil
}

func bindRates(r *http.Request, _ map[string]string, _ runtime.Marshaler, req *gaugev1.RateHistoryRequest) error {
	q := r.URL.Query()
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "page_size: %v", err)
		}
		req.PageSize = int32(n)
	}
	if v := q.Get("before_sequence"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "before_sequence: %v", err)
		}
		req.BeforeSequence = n
	}
	return nil
}

func uintParam(name, v string) (uint64, error) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "%s: %v", name, err)
	}
	return n, nil
}
