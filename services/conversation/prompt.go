// File: services/conversation/prompt.go
package conversation

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripmate/models"
)

// BuildPrompt composes the completion prompt from the conversation
// state, the incoming message, and the retrieved support documents.
// Section order is fixed; optional sections appear only when their
// source data is present.
func BuildPrompt(state *models.ConversationState, message string, docs []models.SupportContent) string {
	var sb strings.Builder
	tripCtx := state.Context

	sb.WriteString("You are a travel booking assistant for Norse Atlantic Airways. Current conversation state:\n")
	fmt.Fprintf(&sb, "Step: %s\n", state.CurrentStep)

	if tripCtx.TripPurpose != "" {
		fmt.Fprintf(&sb, "Trip Purpose: %s\n", tripCtx.TripPurpose)
	}
	if tripCtx.Flight != nil {
		writeSlot(&sb, "Flight Details", tripCtx.Flight)
	}
	if tripCtx.Hotel != nil {
		writeSlot(&sb, "Hotel Details", tripCtx.Hotel)
	}
	if tripCtx.Transportation != nil {
		writeSlot(&sb, "Transportation Details", tripCtx.Transportation)
	}
	if tripCtx.Restaurant != nil {
		writeSlot(&sb, "Restaurant Details", tripCtx.Restaurant)
	}

	if len(docs) > 0 {
		sb.WriteString("\nRelevant support content:\n")
		for i, doc := range docs {
			fmt.Fprintf(&sb, "%d. %s\n%s\n\n", i+1, doc.Title, doc.Content)
		}
	}

	fmt.Fprintf(&sb, "\nLast message: %s\n", message)
	sb.WriteString("\nPlease provide a helpful response that guides the user through the booking process.")
	if len(docs) > 0 {
		sb.WriteString(" Use the provided support content as your primary source of information.")
	}

	return sb.String()
}

// writeSlot appends one labeled context slot as a JSON dump.
func writeSlot(sb *strings.Builder, label string, slot any) {
	data, err := json.Marshal(slot)
	if err != nil {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, data)
}
