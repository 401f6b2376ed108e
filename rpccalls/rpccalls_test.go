// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/fixtures"
	"github.com/bitmark-inc/hbytes/rpccalls"
	"github.com/bitmark-inc/hbytes/rpccalls/mocks"
)

// main test entry point
func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a fake node that records every command it receives
type node struct {
	sync.Mutex
	t        *testing.T
	commands []map[string]interface{}
	status   int
	reply    string
	bodies   map[string]string
}

func newNode(t *testing.T) *node {
	return &node{
		t:      t,
		status: http.StatusOK,
		bodies: make(map[string]string),
	}
}

func (n *node) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(n.t, http.MethodPost, r.Method, "method")
	assert.Equal(n.t, "application/json", r.Header.Get("Content-Type"), "content type")
	assert.Equal(n.t, constants.APIVersion, r.Header.Get(constants.APIVersionHeader), "api version")

	data, err := ioutil.ReadAll(r.Body)
	require.NoError(n.t, err)

	var command map[string]interface{}
	require.NoError(n.t, json.Unmarshal(data, &command))

	n.Lock()
	n.commands = append(n.commands, command)
	n.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(n.status)

	if "" != n.reply {
		_, _ = w.Write([]byte(n.reply))
		return
	}

	switch command["command"] {
	case "getHBytes":
		bodies := []string{}
		for _, h := range command["hashes"].([]interface{}) {
			bodies = append(bodies, n.bodies[h.(string)])
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"hbytes": bodies})
	case "findTransactions":
		_, _ = w.Write([]byte(`{"hashes":["` + strings.Repeat("a", 64) + `","` + strings.Repeat("b", 64) + `"]}`))
	case "getNodeInfo":
		_, _ = w.Write([]byte(`{"appName":"helix","appVersion":"0.5.0"}`))
	default:
		_, _ = w.Write([]byte(`{}`))
	}
}

func (n *node) names() []string {
	n.Lock()
	defer n.Unlock()
	names := make([]string, len(n.commands))
	for i, c := range n.commands {
		names[i] = c["command"].(string)
	}
	return names
}

func newClient(t *testing.T, server *httptest.Server, store rpccalls.Store) *rpccalls.Client {
	client, err := rpccalls.NewClient(&rpccalls.Configuration{
		URI:               server.URL,
		RequestsPerSecond: 1000,
	}, nil, store)
	require.NoError(t, err)
	return client
}

func TestNewClientInvalidURI(t *testing.T) {
	for _, uri := range []string{"ftp://localhost", "localhost:14265", "http://"} {
		_, err := rpccalls.NewClient(&rpccalls.Configuration{URI: uri}, nil, nil)
		assert.Equal(t, fault.ErrInvalidURI, err, uri)
	}

	client, err := rpccalls.NewClient(&rpccalls.Configuration{}, nil, nil)
	assert.NoError(t, err, "defaults")
	assert.NotNil(t, client)
}

func TestGetHBytes(t *testing.T) {
	n := newNode(t)
	tx, packed := fixtures.Transaction(0)
	n.bodies[tx.Hash] = packed

	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	bodies, err := client.GetHBytes(context.Background(), []string{tx.Hash})
	require.NoError(t, err)
	assert.Equal(t, []string{packed}, bodies)

	_, err = client.GetHBytes(context.Background(), []string{"not-a-hash"})
	assert.Equal(t, fault.ErrInvalidHash, err)

	_, err = client.GetHBytes(context.Background(), nil)
	assert.Equal(t, fault.ErrInvalidCount, err)

	assert.Equal(t, []string{"getHBytes"}, n.names(), "invalid requests not sent")
}

func TestGetHBytesShortReply(t *testing.T) {
	n := newNode(t)
	n.reply = `{"hbytes":[]}`
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	_, err := client.GetHBytes(context.Background(), []string{strings.Repeat("a", 64)})
	assert.Equal(t, fault.ErrInvalidResponse, err)
}

func TestRequestErrors(t *testing.T) {
	errorTests := []struct {
		status   int
		reply    string
		expected string
	}{
		{http.StatusBadRequest, `{"error":"Invalid parameters"}`, "Request error: Invalid parameters"},
		{http.StatusInternalServerError, `{"exception":"null pointer"}`, "Request error: null pointer"},
		{http.StatusNotFound, `not json`, "Request error: Not Found"},
		{http.StatusUnauthorized, `{}`, "Request error: Unauthorized"},
	}

	for _, item := range errorTests {
		n := newNode(t)
		n.status = item.status
		n.reply = item.reply
		server := httptest.NewServer(n)
		client := newClient(t, server, nil)

		_, err := client.GetNodeInfo(context.Background())
		if assert.Error(t, err) {
			assert.Equal(t, item.expected, err.Error())
			assert.True(t, fault.IsErrProcess(err))
		}
		server.Close()
	}
}

func TestInvalidJSONReply(t *testing.T) {
	n := newNode(t)
	n.reply = `{"appName":`
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	_, err := client.GetNodeInfo(context.Background())
	assert.Equal(t, fault.ErrInvalidResponse, err)
}

func TestGetNodeInfo(t *testing.T) {
	n := newNode(t)
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	info, err := client.GetNodeInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "helix", info["appName"])
	assert.Equal(t, []string{"getNodeInfo"}, n.names())
}

func TestGetTransactionObjects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx1, packed1 := fixtures.Transaction(1)
	tx2, packed2 := fixtures.Transaction(2)

	n := newNode(t)
	n.bodies[tx2.Hash] = packed2
	server := httptest.NewServer(n)
	defer server.Close()

	store := mocks.NewMockStore(ctl)
	client := newClient(t, server, store)

	gomock.InOrder(
		store.EXPECT().Get(tx1.Hash).Return(packed1, nil).Times(1),
		store.EXPECT().Get(tx2.Hash).Return("", fault.ErrTransactionNotFound).Times(1),
		store.EXPECT().Put(tx2.Hash, packed2).Return(nil).Times(1),
	)

	txs, err := client.GetTransactionObjects(context.Background(), []string{tx1.Hash, tx2.Hash})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, tx1, txs[0])
	assert.Equal(t, tx2, txs[1])
	assert.Equal(t, []string{"getHBytes"}, n.names())
	assert.Equal(t, []interface{}{tx2.Hash}, n.commands[0]["hashes"], "only missing hash requested")

	// second lookup is served from the cache: no store or node access
	txs[0].Value = 12345
	txs, err = client.GetTransactionObjects(context.Background(), []string{tx2.Hash, tx1.Hash})
	require.NoError(t, err)
	assert.Equal(t, tx2, txs[0])
	assert.Equal(t, tx1, txs[1], "cached copy not modified")
	assert.Len(t, n.names(), 1)
}

func TestGetTransactionObjectsStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx, packed := fixtures.Transaction(3)

	n := newNode(t)
	n.bodies[tx.Hash] = packed
	server := httptest.NewServer(n)
	defer server.Close()

	store := mocks.NewMockStore(ctl)
	client := newClient(t, server, store)

	store.EXPECT().Get(tx.Hash).Return("", fault.ErrNotInitialised).Times(1)
	store.EXPECT().Put(tx.Hash, packed).Return(fault.ErrReadOnly).Times(1)

	txs, err := client.GetTransactionObjects(context.Background(), []string{tx.Hash})
	require.NoError(t, err, "store failures do not fail the request")
	assert.Equal(t, tx, txs[0])
}

func TestGetTransactionObjectsInvalidBody(t *testing.T) {
	hash := strings.Repeat("f", 64)

	n := newNode(t)
	n.bodies[hash] = strings.Repeat("9", 2672)
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	_, err := client.GetTransactionObjects(context.Background(), []string{hash})
	assert.Equal(t, fault.ErrInvalidHBytes, err)
}

func TestFindTransactions(t *testing.T) {
	n := newNode(t)
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	query := rpccalls.FindQuery{
		Addresses: []string{"0270af6513000abc87fbb1cb413d27bb06826461b1968f644ab9224b28f89b044f"},
		Tags:      []string{strings.Repeat("a", 16)},
	}
	hashes, err := client.FindTransactions(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, []string{strings.Repeat("a", 64), strings.Repeat("b", 64)}, hashes)

	command := n.commands[0]
	assert.Equal(t, "findTransactions", command["command"])
	assert.Len(t, command["addresses"], 1)
	assert.Len(t, command["tags"], 1)
	assert.NotContains(t, command, "bundles", "empty lists omitted")
	assert.NotContains(t, command, "approvees", "empty lists omitted")

	invalidTests := []struct {
		query rpccalls.FindQuery
		err   error
	}{
		{rpccalls.FindQuery{}, fault.ErrInvalidCommand},
		{rpccalls.FindQuery{Bundles: []string{strings.Repeat("a", 82)}}, fault.ErrInvalidHash},
		{rpccalls.FindQuery{Approvees: []string{"XYZ"}}, fault.ErrInvalidHash},
		{rpccalls.FindQuery{Tags: []string{strings.Repeat("a", 28)}}, fault.ErrInvalidTag},
		{rpccalls.FindQuery{Addresses: make([]string, constants.MaxRequestBatchSize+1)}, fault.ErrInvalidCount},
	}
	for i, item := range invalidTests {
		_, err := client.FindTransactions(context.Background(), item.query)
		assert.Equal(t, item.err, err, "%d", i)
	}
	assert.Len(t, n.names(), 1, "invalid queries not sent")
}

func TestFindTransactionObjects(t *testing.T) {
	tx1, packed1 := fixtures.Transaction(1)

	n := newNode(t)
	n.reply = `{"hashes":[]}`
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	txs, err := client.FindTransactionObjects(context.Background(), rpccalls.FindQuery{Bundles: []string{tx1.Bundle}})
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, []string{"findTransactions"}, n.names(), "nothing to fetch")

	n2 := newNode(t)
	n2.reply = ""
	n2.bodies[strings.Repeat("a", 64)] = packed1
	n2.bodies[strings.Repeat("b", 64)] = packed1
	server2 := httptest.NewServer(n2)
	defer server2.Close()
	client2 := newClient(t, server2, nil)

	txs, err = client2.FindTransactionObjects(context.Background(), rpccalls.FindQuery{Bundles: []string{tx1.Bundle}})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, strings.Repeat("a", 64), txs[0].Hash)
	assert.Equal(t, strings.Repeat("b", 64), txs[1].Hash)
	assert.Equal(t, tx1.Address, txs[1].Address)
	assert.Equal(t, []string{"findTransactions", "getHBytes"}, n2.names())
}

func TestStoreAndBroadcast(t *testing.T) {
	_, packed := fixtures.Transaction(0)

	n := newNode(t)
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	err := client.StoreAndBroadcast(context.Background(), []string{packed})
	require.NoError(t, err)
	assert.Equal(t, []string{"storeTransactions", "broadcastTransactions"}, n.names())
	assert.Equal(t, []interface{}{packed}, n.commands[1]["hbytes"])

	err = client.BroadcastTransactions(context.Background(), []string{packed[1:]})
	assert.Equal(t, fault.ErrInvalidHBytes, err)
	assert.Len(t, n.names(), 2)
}

func TestStoreFailureStopsBroadcast(t *testing.T) {
	_, packed := fixtures.Transaction(0)

	n := newNode(t)
	n.status = http.StatusBadRequest
	n.reply = `{"error":"Invalid transaction"}`
	server := httptest.NewServer(n)
	defer server.Close()
	client := newClient(t, server, nil)

	err := client.StoreAndBroadcast(context.Background(), []string{packed})
	assert.Equal(t, fault.RequestError("Invalid transaction"), err)
	assert.Equal(t, []string{"storeTransactions"}, n.names())
}

func TestTransportError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	doer := mocks.NewMockDoer(ctl)
	client, err := rpccalls.NewClient(&rpccalls.Configuration{}, doer, nil)
	require.NoError(t, err)

	failure := errors.New("connection refused")
	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, constants.DefaultURI, r.URL.String())
		assert.Equal(t, constants.APIVersion, r.Header.Get(constants.APIVersionHeader))
		return nil, failure
	}).Times(1)

	_, err = client.GetNodeInfo(context.Background())
	assert.Equal(t, failure, err)
}

func TestCancelledContext(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	doer := mocks.NewMockDoer(ctl)
	client, err := rpccalls.NewClient(&rpccalls.Configuration{}, doer, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no call expected on doer
	_, err = client.GetNodeInfo(ctx)
	assert.Error(t, err)
}
