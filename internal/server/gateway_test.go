package server_test

import (
	gaugev1 "GaugeLedger/gen/go/gaugeledger/v1"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/server"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func newGateway(t *testing.T, f *fixture) *httptest.Server {
	t.Helper()
	mux, err := server.NewGatewayMux(f.client)
	require.NoError(t, err)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, into proto.Message) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, protojson.Unmarshal(data, into), string(data))
}

func TestGateway_Routes(t *testing.T) {
	f := newFixture(t)
	f.stakeOne(t)
	gw := newGateway(t, f)

	resp, err := http.Get(gw.URL + "/v1/schedule")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sched gaugev1.ScheduleResponse
	decodeBody(t, resp, &sched)
	require.Equal(t, int64(1), sched.TotalStaked)

	resp2, err := http.Get(gw.URL + "/v1/owners/" + lp.Hex() + "/stakes")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	var stakes gaugev1.StakesResponse
	decodeBody(t, resp2, &stakes)
	require.Equal(t, []uint64{1}, stakes.Positions)
}

func TestGateway_SubmitCommand(t *testing.T) {
	f := newFixture(t)
	f.stakeOne(t)
	gw := newGateway(t, f)

	data, err := event.EncodeCommand(&event.ClaimCmd{Header: h(lp, 50), PositionID: 1})
	require.NoError(t, err)
	body, err := protojson.Marshal(&gaugev1.SubmitRequest{Command: string(data)})
	require.NoError(t, err)

	resp, err := http.Post(gw.URL+"/v1/commands", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out gaugev1.SubmitResponse
	decodeBody(t, resp, &out)
	require.Equal(t, int64(3), out.Sequence)
	require.Equal(t, int64(4), f.processor.Sequence())
}

func TestGateway_ErrorStatus(t *testing.T) {
	f := newFixture(t)
	f.stakeOne(t)
	gw := newGateway(t, f)

	tests := []struct {
		path string
		want int
	}{
		{"/v1/positions/abc/pending", http.StatusBadRequest},
		{"/v1/positions/99/entry", http.StatusNotFound},
		{"/v1/owners/nobody/stakes", http.StatusBadRequest},
		{"/v1/rates?page_size=x", http.StatusBadRequest},
		{"/v1/admin/integrity", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		resp, err := http.Get(gw.URL + tt.path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, tt.want, resp.StatusCode, tt.path)
	}
}
