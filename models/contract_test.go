package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ContractStatus
		to      ContractStatus
		allowed bool
	}{
		{ContractStatusDraft, ContractStatusSent, true},
		{ContractStatusDraft, ContractStatusCancelled, true},
		{ContractStatusDraft, ContractStatusApproved, false},
		{ContractStatusSent, ContractStatusWaitApproval, true},
		{ContractStatusSent, ContractStatusDraft, false},
		{ContractStatusWaitApproval, ContractStatusApproved, true},
		{ContractStatusWaitApproval, ContractStatusCancelled, true},
		{ContractStatusApproved, ContractStatusSigned, true},
		{ContractStatusApproved, ContractStatusDraft, false},
		{ContractStatusSigned, ContractStatusCancelled, true},
		{ContractStatusSigned, ContractStatusDraft, false},
		{ContractStatusCancelled, ContractStatusSent, false},
		{ContractStatusCancelled, ContractStatusCancelled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
