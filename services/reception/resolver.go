package reception

import (
	"context"
	"fmt"

	hotelRepo "ybhotels/database/repository/hotel"
	receptionRepo "ybhotels/database/repository/reception"
	userRepo "ybhotels/database/repository/user"
	"ybhotels/models"
	"ybhotels/services/booking"
	ai "ybhotels/services/intelligence"
	"ybhotels/services/retrieval"

	"go.uber.org/zap"
)

// historyLimit caps how many prior turns are replayed into the prompt.
const historyLimit = 10

// Resolver turns one persisted guest utterance into a reply, dispatching
// hotel operations along the way. It runs as a queue handler, decoupled from
// the caller, and communicates back by marking the session document
// processed.
type Resolver struct {
	Ops       *booking.Service
	Fast      *FastPath
	AI        ai.Client
	Store     *ai.RedisContextStore
	Retriever *retrieval.Retriever
	Hotel     hotelRepo.HotelRepository
	Users     userRepo.UserRepository
	Reception receptionRepo.ReceptionRepository
}

func NewResolver(ops *booking.Service, aiClient ai.Client, store *ai.RedisContextStore,
	retriever *retrieval.Retriever, hotel hotelRepo.HotelRepository,
	users userRepo.UserRepository, reception receptionRepo.ReceptionRepository) *Resolver {
	return &Resolver{
		Ops:       ops,
		Fast:      NewFastPath(ops),
		AI:        aiClient,
		Store:     store,
		Retriever: retriever,
		Hotel:     hotel,
		Users:     users,
		Reception: reception,
	}
}

// Process handles one session document exactly once. A document already
// marked processed is skipped, so queue redeliveries are harmless. Every
// other path, including store failures mid-flight, ends with the document
// marked processed so the caller's listener always resolves.
func (r *Resolver) Process(ctx context.Context, messageID string) error {
	msg, err := r.Reception.GetByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("load reception message %s: %w", messageID, err)
	}
	if msg.Processed {
		zap.L().Debug("reception message already processed", zap.String("id", messageID))
		return nil
	}

	caller := r.identify(ctx, msg)
	outcome := r.resolve(ctx, msg, caller)

	fields := map[string]interface{}{"result": outcome.Text}
	if outcome.Call != nil {
		fields["functionCall"] = outcome.Call
	}
	if outcome.Response != nil {
		fields["functionResponse"] = outcome.Response
	}
	if outcome.Err != "" {
		fields["error"] = outcome.Err
	}
	if caller != nil && msg.UserID == "" {
		fields["userId"] = caller.ID
	}
	if err := r.Reception.MarkProcessed(ctx, messageID, fields); err != nil {
		return fmt.Errorf("mark reception message %s processed: %w", messageID, err)
	}

	r.remember(ctx, msg, caller, outcome)
	zap.L().Info("reception message resolved",
		zap.String("id", messageID),
		zap.String("sessionId", msg.SessionID),
		zap.Bool("functionCall", outcome.Call != nil))
	return nil
}

// turnOutcome is the full record of one resolved turn.
type turnOutcome struct {
	Text     string
	Call     *models.FunctionCall
	Response map[string]interface{}
	Err      string
	Intent   string
}

func (r *Resolver) resolve(ctx context.Context, msg *models.ReceptionMessage, caller *models.User) turnOutcome {
	userID := msg.UserID
	if userID == "" && caller != nil {
		userID = caller.ID
	}

	if match, ok := r.Fast.Resolve(ctx, msg.Transcript, userID); ok {
		if match.Clarification != "" {
			return turnOutcome{Text: match.Clarification, Intent: "clarification"}
		}
		out := r.Dispatch(ctx, match.Call, caller, "")
		return r.record(out, match.Call)
	}

	return r.resolveWithModel(ctx, msg, caller)
}

func (r *Resolver) resolveWithModel(ctx context.Context, msg *models.ReceptionMessage, caller *models.User) turnOutcome {
	pc := r.assembleContext(ctx, msg, caller)

	raw, err := r.AI.GenerateContent(ctx, BuildPrompt(pc, msg.Transcript))
	if err != nil {
		zap.L().Warn("model call failed, using FAQ fallback", zap.Error(err))
		return turnOutcome{Text: FallbackReply(msg.Transcript, pc.Hotel), Intent: "fallback"}
	}

	reply := ParseModelReply(raw)
	if reply.FunctionCall == nil {
		return turnOutcome{Text: reply.Text, Intent: "chat"}
	}
	out := r.Dispatch(ctx, reply.FunctionCall, caller, reply.Text)
	return r.record(out, reply.FunctionCall)
}

func (r *Resolver) record(out Outcome, call *models.FunctionCall) turnOutcome {
	t := turnOutcome{Text: out.Text, Response: out.Response, Intent: call.Name}
	if KnownFunction(call.Name) {
		t.Call = call
	}
	if out.Response != nil {
		if ok, _ := out.Response["success"].(bool); !ok {
			if e, _ := out.Response["error"].(string); e != "" {
				t.Err = e
			}
		}
	}
	return t
}

// assembleContext gathers everything the prompt needs. Each lookup is best
// effort: a failed read narrows the context instead of failing the turn.
func (r *Resolver) assembleContext(ctx context.Context, msg *models.ReceptionMessage, caller *models.User) PromptContext {
	pc := PromptContext{Caller: caller}

	if info, err := r.Hotel.GetInfo(ctx); err == nil {
		pc.Hotel = info
	} else {
		zap.L().Warn("hotel info lookup failed", zap.Error(err))
	}
	if rooms, err := r.Ops.Rooms.GetAll(ctx); err == nil {
		pc.Rooms = rooms
	}
	if caller != nil {
		if bookings, err := r.Ops.GetUserBookings(ctx, caller.ID); err == nil {
			pc.Bookings = bookings
		}
	}
	if r.Retriever != nil {
		if docs, err := r.Retriever.Retrieve(ctx, msg.Transcript); err == nil {
			pc.Documents = docs
		} else {
			zap.L().Warn("context retrieval failed", zap.Error(err))
		}
	}
	if msg.SessionID != "" {
		if history, err := r.Reception.GetSessionHistory(ctx, msg.SessionID, historyLimit); err == nil {
			pc.History = history
		}
	}
	return pc
}

func (r *Resolver) identify(ctx context.Context, msg *models.ReceptionMessage) *models.User {
	if msg.Email == "" {
		return nil
	}
	user, err := r.Users.GetByEmail(ctx, msg.Email)
	if err != nil {
		zap.L().Debug("caller not found by email", zap.String("email", msg.Email))
		return nil
	}
	return user
}

// remember stores the turn's intent in the session context so follow-ups
// can lean on it. Best effort.
func (r *Resolver) remember(ctx context.Context, msg *models.ReceptionMessage, caller *models.User, out turnOutcome) {
	if r.Store == nil || msg.SessionID == "" {
		return
	}
	sc := &models.SessionContext{Email: msg.Email, LastIntent: out.Intent}
	if caller != nil {
		sc.UserID = caller.ID
	}
	if err := r.Store.Set(ctx, msg.SessionID, sc); err != nil {
		zap.L().Debug("session context save failed", zap.Error(err))
	}
}
