// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
)

// command names understood by the node
const (
	broadcastTransactionsCommand = "broadcastTransactions"
	findTransactionsCommand      = "findTransactions"
	getHBytesCommand             = "getHBytes"
	getNodeInfoCommand           = "getNodeInfo"
	storeTransactionsCommand     = "storeTransactions"
)

// body of a failed request
type errorReply struct {
	Error     string `json:"error"`
	Exception string `json:"exception"`
}

// Send - post one command and decode the reply
//
// a non 2xx status is returned as a request error carrying the node's
// error or exception text, or the HTTP status text if it has none
func (client *Client) Send(ctx context.Context, command interface{}, reply interface{}) error {

	if err := client.limiter.Wait(ctx); nil != err {
		return err
	}

	body, err := json.Marshal(command)
	if nil != err {
		return err
	}

	request, err := http.NewRequest(http.MethodPost, client.uri, bytes.NewReader(body))
	if nil != err {
		return err
	}
	request = request.WithContext(ctx)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(constants.APIVersionHeader, client.apiVersion)

	client.log.Debugf("request: %s", body)

	response, err := client.doer.Do(request)
	if nil != err {
		client.log.Warnf("request error: %s", err)
		return err
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		reason := http.StatusText(response.StatusCode)
		var e errorReply
		if nil == json.Unmarshal(data, &e) {
			if "" != e.Error {
				reason = e.Error
			} else if "" != e.Exception {
				reason = e.Exception
			}
		}
		client.log.Warnf("status: %d  reason: %s", response.StatusCode, reason)
		return fault.RequestError(reason)
	}

	if nil == reply {
		return nil
	}
	if err := json.Unmarshal(data, reply); nil != err {
		client.log.Warnf("invalid response: %q  error: %s", data, err)
		return fault.ErrInvalidResponse
	}
	return nil
}
