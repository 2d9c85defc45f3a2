// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PayoutOperation selects which payout lifecycle behavior the dispatcher
// runs. It carries no data of its own.
type PayoutOperation int

const (
	PayoutCreate PayoutOperation = iota
	PayoutRetrieve
	PayoutUpdate
	PayoutReverse
	PayoutCancel
	PayoutAccounts
)

var payoutOperationNames = map[PayoutOperation]string{
	PayoutCreate:   "PayoutCreate",
	PayoutRetrieve: "PayoutRetrieve",
	PayoutUpdate:   "PayoutUpdate",
	PayoutReverse:  "PayoutReverse",
	PayoutCancel:   "PayoutCancel",
	PayoutAccounts: "PayoutAccounts",
}

var payoutOperationFlows = map[PayoutOperation]Flow{
	PayoutCreate:   FlowPayoutsCreate,
	PayoutRetrieve: FlowPayoutsRetrieve,
	PayoutUpdate:   FlowPayoutsUpdate,
	PayoutReverse:  FlowPayoutsReverse,
	PayoutCancel:   FlowPayoutsCancel,
	PayoutAccounts: FlowPayoutsAccounts,
}

// placeholder bodies of operations that have no business semantics yet
var payoutOperationPlaceholders = map[PayoutOperation]string{
	PayoutRetrieve: "retrieve",
	PayoutUpdate:   "update",
	PayoutReverse:  "reverse",
	PayoutCancel:   "cancel",
	PayoutAccounts: "accounts",
}

func (o PayoutOperation) String() string {
	if name, ok := payoutOperationNames[o]; ok {
		return name
	}
	return "PayoutUnknown"
}

// Flow returns the flow tag requests of this operation are labelled with.
func (o PayoutOperation) Flow() Flow {
	return payoutOperationFlows[o]
}

// Placeholder returns the fixed acknowledgement body of an unimplemented
// operation. ok is false for operations with real semantics.
func (o PayoutOperation) Placeholder() (body string, ok bool) {
	body, ok = payoutOperationPlaceholders[o]
	return body, ok
}
