// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

//go:generate mockgen -destination=mocks/doer.go -package=mocks github.com/bitmark-inc/hbytes/rpccalls Doer
//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/hbytes/rpccalls Store

import (
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

// Doer - the part of http.Client used here
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Store - local transaction bodies keyed by hash
type Store interface {
	Get(hash string) (string, error)
	Put(hash string, hbytes string) error
}

// Configuration - node connection settings
type Configuration struct {
	URI               string `gluamapper:"uri" json:"uri"`
	APIVersion        string `gluamapper:"api_version" json:"api_version"`
	RequestsPerSecond int    `gluamapper:"requests_per_second" json:"requests_per_second"`
	Timeout           int    `gluamapper:"timeout" json:"timeout"`           // seconds
	CacheExpiry       int    `gluamapper:"cache_expiry" json:"cache_expiry"` // seconds
}

// Client - to hold the node connection state
type Client struct {
	log        *logger.L
	uri        string
	apiVersion string
	doer       Doer
	limiter    *rate.Limiter
	cache      *cache.Cache
	store      Store
	codec      *transaction.Codec
}

// NewClient - create a client for a node
//
// doer defaults to an http.Client using the configured timeout, store
// may be nil to disable local persistence
func NewClient(configuration *Configuration, doer Doer, store Store) (*Client, error) {

	log := logger.New("rpc-client")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	uri := configuration.URI
	if "" == uri {
		uri = constants.DefaultURI
	}
	u, err := url.Parse(uri)
	if nil != err || ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
		return nil, fault.ErrInvalidURI
	}

	apiVersion := configuration.APIVersion
	if "" == apiVersion {
		apiVersion = constants.APIVersion
	}

	rps := configuration.RequestsPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimit
	}

	timeout := constants.DefaultTimeout
	if configuration.Timeout > 0 {
		timeout = time.Duration(configuration.Timeout) * time.Second
	}

	expiry := constants.DefaultCacheTTL
	if configuration.CacheExpiry > 0 {
		expiry = time.Duration(configuration.CacheExpiry) * time.Second
	}

	if nil == doer {
		doer = &http.Client{
			Timeout: timeout,
		}
	}

	log.Infof("node: %s  api version: %s  rate: %d/s", uri, apiVersion, rps)

	return &Client{
		log:        log,
		uri:        uri,
		apiVersion: apiVersion,
		doer:       doer,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		cache:      cache.New(expiry, 2*expiry),
		store:      store,
		codec:      transaction.NewCodec(nil, nil),
	}, nil
}

// FlushCache - forget all cached transactions
func (client *Client) FlushCache() {
	client.cache.Flush()
}
