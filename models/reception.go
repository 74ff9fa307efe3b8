package models

import "time"

// ReceptionMessage is the session document exchanged between a caller and
// the intent resolver. The caller creates it with Transcript/Email/SessionID
// set; the resolver mutates it exactly once, filling the response fields.
type ReceptionMessage struct {
	ID          string    `bson:"id" json:"id"`
	Transcript  string    `bson:"transcript" json:"transcript"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	UserID      string    `bson:"userId,omitempty" json:"userId,omitempty"`
	SessionID   string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Role        string    `bson:"role" json:"role"` // "user" or "assistant"
	Processed   bool      `bson:"processed" json:"processed"`
	Result      string    `bson:"result,omitempty" json:"result,omitempty"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	ProcessedAt time.Time `bson:"processedAt,omitempty" json:"processedAt,omitempty"`

	// Audit fields recording what the resolver dispatched.
	FunctionCall     *FunctionCall          `bson:"functionCall,omitempty" json:"functionCall,omitempty"`
	FunctionResponse map[string]interface{} `bson:"functionResponse,omitempty" json:"functionResponse,omitempty"`
}

// SessionContext is the short-lived conversational state kept per session in
// Redis between turns: who the caller is and what the assistant last asked.
type SessionContext struct {
	UserID        string                 `json:"userId,omitempty"`
	Email         string                 `json:"email,omitempty"`
	LastIntent    string                 `json:"lastIntent,omitempty"`
	PendingParams map[string]interface{} `json:"pendingParams,omitempty"`
	UpdatedAt     time.Time              `json:"updatedAt,omitempty"`
}
