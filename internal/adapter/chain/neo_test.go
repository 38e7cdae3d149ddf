package chain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNeoAddress = "NikhQp1aAD1YFCiwknhM5LQQebj4464bCJ"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func newNeoTestServer(t *testing.T, handler func(req rpcRequest, w http.ResponseWriter)) *NeoRPC {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		handler(req, w)
	}))
	t.Cleanup(srv.Close)
	return NewNeoRPC(srv.URL, srv.Client(), logger.Nop())
}

func TestNeoRPC_NEP17Balances(t *testing.T) {
	client := newNeoTestServer(t, func(req rpcRequest, w http.ResponseWriter) {
		assert.Equal(t, "getnep17balances", req.Method)
		require.Len(t, req.Params, 1)
		assert.Equal(t, testNeoAddress, req.Params[0])
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"address":"` + testNeoAddress + `","balance":[
			{"assethash":"0xd2a4cff31913016155e38e474a2c06d08be276cf","amount":"123456789","lastupdatedblock":100},
			{"assethash":"0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5","amount":"300000000","lastupdatedblock":90}
		]}}`))
	})

	balances, err := client.NEP17Balances(context.Background(), testNeoAddress)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "0xd2a4cff31913016155e38e474a2c06d08be276cf", balances[0].AssetHash)
	assert.Equal(t, "123456789", balances[0].Amount)
}

func TestNeoRPC_NEP17Transfers_MillisecondWindow(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	client := newNeoTestServer(t, func(req rpcRequest, w http.ResponseWriter) {
		assert.Equal(t, "getnep17transfers", req.Method)
		require.Len(t, req.Params, 3)
		// JSON numbers decode as float64.
		assert.EqualValues(t, start.UnixMilli(), req.Params[1])
		assert.EqualValues(t, end.UnixMilli(), req.Params[2])
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{
			"sent":[{"timestamp":1747094400000,"assethash":"0xd2a4cff31913016155e38e474a2c06d08be276cf","transferaddress":"NPeer1","amount":"50000000","txhash":"0xsent1"}],
			"received":[{"timestamp":1747180800000,"assethash":"0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5","transferaddress":"NPeer2","amount":"100000000","txhash":"0xrecv1"}],
			"address":"` + testNeoAddress + `"}}`))
	})

	transfers, err := client.NEP17Transfers(context.Background(), testNeoAddress, start, end)
	require.NoError(t, err)
	require.Len(t, transfers.Sent, 1)
	require.Len(t, transfers.Received, 1)

	assert.Equal(t, "0xsent1", transfers.Sent[0].TxHash)
	assert.Equal(t, time.UnixMilli(1747094400000).UTC(), transfers.Sent[0].Timestamp)
	assert.Equal(t, "NPeer2", transfers.Received[0].TransferAddress)
}

func TestNeoRPC_ErrorEnvelope(t *testing.T) {
	client := newNeoTestServer(t, func(req rpcRequest, w http.ResponseWriter) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params"}}`))
	})

	_, err := client.NEP17Balances(context.Background(), testNeoAddress)
	require.Error(t, err)

	var protoErr *ports.UpstreamProtocolError
	require.True(t, errors.As(err, &protoErr))
	assert.Contains(t, protoErr.Payload, "Invalid params")
}

func TestNeoRPC_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNeoRPC(srv.URL, srv.Client(), logger.Nop())
	_, err := client.NEP17Balances(context.Background(), testNeoAddress)
	require.Error(t, err)

	var httpErr *ports.UpstreamHTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
}

func TestNeoHealthCheck(t *testing.T) {
	client := newNeoTestServer(t, func(req rpcRequest, w http.ResponseWriter) {
		assert.Equal(t, "getblockcount", req.Method)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":5000000}`))
	})

	hc := NewNeoHealthCheck(client)
	assert.Equal(t, "neo-rpc", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}
