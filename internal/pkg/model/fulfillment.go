package model

// Intents dispatched by the assistant's fulfillment endpoint.
const (
	IntentSync    = "action.devices.SYNC"
	IntentQuery   = "action.devices.QUERY"
	IntentExecute = "action.devices.EXECUTE"
)

type IntentRequest struct {
	RequestID string        `json:"requestId"`
	Inputs    []IntentInput `json:"inputs"`
}

type IntentInput struct {
	Intent  string        `json:"intent"`
	Payload IntentPayload `json:"payload,omitempty"`
}

type IntentPayload struct {
	Devices  []DeviceRef `json:"devices,omitempty"`
	Commands []Command   `json:"commands,omitempty"`
}

type DeviceRef struct {
	ID string `json:"id"`
}

// Command groups a set of executions against a set of target devices.
type Command struct {
	Devices   []DeviceRef `json:"devices"`
	Execution []Execution `json:"execution"`
}

// Execution is a single commanded state change.
type Execution struct {
	Command string        `json:"command"`
	Params  CommandParams `json:"params"`
}

type SyncResponse struct {
	RequestID string      `json:"requestId"`
	Payload   SyncPayload `json:"payload"`
}

type SyncPayload struct {
	AgentUserID string    `json:"agentUserId"`
	Devices     []*Device `json:"devices"`
}

type QueryResponse struct {
	RequestID string       `json:"requestId"`
	Payload   QueryPayload `json:"payload"`
}

type QueryPayload struct {
	Devices map[string]DeviceState `json:"devices"`
}

type ExecuteResponse struct {
	RequestID string         `json:"requestId"`
	Payload   ExecutePayload `json:"payload"`
}

type ExecutePayload struct {
	Commands []CommandResult `json:"commands"`
}

// Command execution status values reported back to the assistant.
const (
	StatusSuccess = "SUCCESS"
	StatusOffline = "OFFLINE"
)

type CommandResult struct {
	IDs    []string    `json:"ids"`
	Status string      `json:"status"`
	States DeviceState `json:"states"`
}
