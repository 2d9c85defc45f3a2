// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the payout gateway.
//
// It wires the payout routes to the dispatch pipeline, each route bound to
// its flow, payload decoder, operation and authentication strategy. Request
// tracing, access logging and response compression are handled here before
// requests reach the pipeline.
package http
