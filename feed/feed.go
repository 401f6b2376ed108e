// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package feed

import (
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

// Configuration - feed settings
type Configuration struct {
	Address string `gluamapper:"address" json:"address"`
	Topic   string `gluamapper:"topic" json:"topic"`
}

// Handler - receives each valid transaction with its body
type Handler func(tx *transaction.Transaction, hbytes string)

// Subscriber - a SUB socket connected to one node
type Subscriber struct {
	log      *logger.L
	address  string
	topic    string
	wait     time.Duration
	socket   *zmq.Socket
	handler  Handler
	codec    *transaction.Codec
	received uint64
	rejected uint64
}

// New - create a subscriber, the socket is connected here so that
// Run only has to receive
func New(configuration *Configuration, handler Handler) (*Subscriber, error) {
	log := logger.New("feed")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	if "" == configuration.Address {
		return nil, fault.ErrMissingFeedAddress
	}

	topic := configuration.Topic
	if "" == topic {
		topic = constants.DefaultFeedTopic
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}
	err = socket.SetRcvtimeo(constants.DefaultFeedWait)
	if nil != err {
		goto failure
	}
	err = socket.SetSubscribe(topic)
	if nil != err {
		goto failure
	}
	err = socket.Connect(configuration.Address)
	if nil != err {
		goto failure
	}

	log.Infof("subscribed to: %s  topic: %q", configuration.Address, topic)

	return &Subscriber{
		log:     log,
		address: configuration.Address,
		topic:   topic,
		wait:    constants.DefaultFeedWait,
		socket:  socket,
		handler: handler,
		codec:   transaction.NewCodec(nil, nil),
	}, nil

failure:
	socket.Close()
	return nil, err
}

// Run - receive until shutdown, the socket is closed on return
func (s *Subscriber) Run(args interface{}, shutdown <-chan struct{}) {

	s.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		message, err := s.socket.RecvMessage(0)
		if nil != err {
			if zmq.Errno(syscall.EAGAIN) != zmq.AsErrno(err) {
				s.log.Errorf("receive error: %s", err)
				time.Sleep(s.wait)
			}
			continue loop
		}

		if err := s.Process(message); nil != err {
			atomic.AddUint64(&s.rejected, 1)
			s.log.Warnf("rejected message: %s", err)
		}
	}

	s.socket.Close()
	s.log.Info("stopped")
	s.log.Flush()
}

// Process - parse one message and pass it to the handler
func (s *Subscriber) Process(message []string) error {
	fields := strings.Fields(strings.Join(message, " "))
	if 3 != len(fields) || s.topic != fields[0] {
		return fault.ErrInvalidCommand
	}

	hbytes := fields[1]
	hash := fields[2]
	if !transaction.IsHash(hash) {
		return fault.ErrInvalidHash
	}

	tx, err := s.codec.Unpack(hbytes, hash)
	if nil != err {
		return err
	}

	atomic.AddUint64(&s.received, 1)
	s.log.Debugf("received: %s", hash)

	if nil != s.handler {
		s.handler(tx, hbytes)
	}
	return nil
}

// Counts - number of messages accepted and rejected so far
func (s *Subscriber) Counts() (uint64, uint64) {
	return atomic.LoadUint64(&s.received), atomic.LoadUint64(&s.rejected)
}
