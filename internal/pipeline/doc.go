// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline is the flow-scoped authenticated dispatch path shared by
// every payout route.
//
// A request is tagged with its [models.Flow], authenticated by the
// [auth.Strategy] bound to the route and, only when authentication
// succeeded, handed to the operation. Every request yields exactly one
// [Result] which is then written as the response envelope.
package pipeline
