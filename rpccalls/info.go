// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
)

// InfoCommand - a command without arguments
type InfoCommand struct {
	Command string `json:"command"`
}

// GetNodeInfo - request status from the node (any version)
func (client *Client) GetNodeInfo(ctx context.Context) (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.Send(ctx, InfoCommand{Command: getNodeInfoCommand}, &reply); nil != err {
		return nil, err
	}
	return reply, nil
}
