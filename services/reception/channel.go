package reception

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	receptionRepo "ybhotels/database/repository/reception"
	"ybhotels/models"
	"ybhotels/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeProcessMessage is the queue task that triggers the resolver for one
// session document.
const TypeProcessMessage = "reception:process"

// ProcessPayload is the task payload: just the document to resolve.
type ProcessPayload struct {
	MessageID string `json:"messageId"`
}

// NewProcessTask builds the queue task for one reception message.
func NewProcessTask(messageID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ProcessPayload{MessageID: messageID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProcessMessage, payload), nil
}

// ErrWaitTimeout is returned when the resolver does not answer within the
// channel's wait window. The resolver's late write is simply ignored.
var ErrWaitTimeout = errors.New("reception: timed out waiting for a reply")

// Channel is the caller side of the session protocol: persist the utterance,
// hand it to the queue, and wait on the document for the resolver's answer.
type Channel struct {
	Reception receptionRepo.ReceptionRepository
	Queue     *asynq.Client
	Timeout   time.Duration
}

func NewChannel(reception receptionRepo.ReceptionRepository, queue *asynq.Client) *Channel {
	return &Channel{
		Reception: reception,
		Queue:     queue,
		Timeout:   utils.ReceptionWaitTimeout,
	}
}

// AskRequest is one inbound guest utterance.
type AskRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Email      string `json:"email"`
	SessionID  string `json:"sessionId"`
	UserID     string `json:"-"`
}

// Ask writes the request document, schedules the resolver, and blocks until
// the document is marked processed or the timeout passes.
func (c *Channel) Ask(ctx context.Context, req AskRequest) (*models.ReceptionMessage, error) {
	msg := models.ReceptionMessage{
		Transcript: req.Transcript,
		Email:      req.Email,
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		Role:       "user",
	}
	id, err := c.Reception.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("persist reception message: %w", err)
	}

	task, err := NewProcessTask(id)
	if err != nil {
		return nil, fmt.Errorf("build process task: %w", err)
	}
	if _, err := c.Queue.EnqueueContext(ctx, task); err != nil {
		return nil, fmt.Errorf("enqueue process task: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	resolved, err := c.Reception.AwaitResult(waitCtx, id)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			zap.L().Warn("reception wait timed out", zap.String("id", id))
			return nil, ErrWaitTimeout
		}
		return nil, fmt.Errorf("await reception result: %w", err)
	}
	return resolved, nil
}
