// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Flow labels the kind of operation an inbound request represents. It is
// assigned once when the request enters the pipeline and is used as the join
// key for spans and log lines of that request.
type Flow string

const (
	FlowPayoutsCreate   Flow = "PayoutsCreate"
	FlowPayoutsRetrieve Flow = "PayoutsRetrieve"
	FlowPayoutsUpdate   Flow = "PayoutsUpdate"
	FlowPayoutsReverse  Flow = "PayoutsReverse"
	FlowPayoutsCancel   Flow = "PayoutsCancel"
	FlowPayoutsAccounts Flow = "PayoutsAccounts"
)

// Flows lists every supported flow in declaration order.
var Flows = []Flow{
	FlowPayoutsCreate,
	FlowPayoutsRetrieve,
	FlowPayoutsUpdate,
	FlowPayoutsReverse,
	FlowPayoutsCancel,
	FlowPayoutsAccounts,
}

func (f Flow) String() string {
	return string(f)
}

// IsValid reports whether f is one of the declared flows.
func (f Flow) IsValid() bool {
	for _, known := range Flows {
		if f == known {
			return true
		}
	}
	return false
}
