package cli

import (
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// errorMessages are the operator-facing texts for registry error codes
var errorMessages = map[fleet.ErrorCode]string{
	fleet.CodeMissingName:               "Vessel name is required.",
	fleet.CodeMissingRegistrationCode:   "Registration code is required.",
	fleet.CodeMissingHomePort:           "Home port is required.",
	fleet.CodeMissingPrimaryLead:        "At least one technical lead is required.",
	fleet.CodeDuplicateLeads:            "The second technical lead must be a different person.",
	fleet.CodeInvalidLeadCount:          "A vessel needs one or two technical leads.",
	fleet.CodeDuplicateRegistrationCode: "Another vessel already uses that registration code.",
	fleet.CodeInvalidStatus:             "Unknown operational status.",
	fleet.CodeNotFound:                  "That vessel no longer exists. Refresh the list and try again.",
}

// describeError renders err for the operator, preferring the registry message
func describeError(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := errorMessages[fleet.CodeOf(err)]; ok {
		return msg
	}
	return err.Error()
}
