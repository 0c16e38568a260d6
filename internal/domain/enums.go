// Package domain defines the core domain models for the assistant.
package domain

// ActionID identifies a locally executable action bound to an intent.
type ActionID string

const (
	// ActionNone marks an intent with no local action.
	ActionNone ActionID = ""

	ActionShowNearbyPoints ActionID = "showNearbyPoints"
	ActionShowRecycleGuide ActionID = "showRecycleGuide"
	ActionShowEWasteInfo   ActionID = "showEWasteInfo"
	ActionEstimateValue    ActionID = "estimateValue"
	ActionShowImpact       ActionID = "showImpact"
	ActionGreet            ActionID = "greet"
	ActionShowHelp         ActionID = "showHelp"
	ActionReportProblem    ActionID = "reportProblem"

	// ActionChat is bound to the GENERAL fallback intent. It has no local
	// handler; messages carrying it always go to the inference backend.
	ActionChat ActionID = "chat"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Surface identifies where a message came from.
type Surface string

const (
	SurfaceCLI Surface = "cli"
	SurfaceWeb Surface = "web"
)

// ReplySource records which path produced the assistant reply.
type ReplySource string

const (
	ReplySourceAction  ReplySource = "action"
	ReplySourceLLM     ReplySource = "llm"
	ReplySourceApology ReplySource = "apology"
)
