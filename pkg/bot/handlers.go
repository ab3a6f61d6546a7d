package bot

import (
	"context"
	"strings"

	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"
)

const (
	placeholderNotice = "Looking that up…"
	usageNotice       = "Send a question after the command, e.g. `!ask what changed in the latest release?`"
	errorNotice       = "Sorry, there was an error processing your question. Please try again shortly."
)

func (b *Bot) handleMembership(ctx context.Context, evt *event.Event) {
	content := evt.Content.AsMember()
	if content.Membership != event.MembershipInvite || evt.GetStateKey() != b.client.UserID.String() {
		return
	}
	if !*b.cfg.Matrix.AutojoinInvites {
		return
	}
	log := b.log.With().Stringer("room_id", evt.RoomID).Stringer("inviter", evt.Sender).Logger()
	if _, err := b.client.JoinRoomByID(ctx, evt.RoomID); err != nil {
		log.Err(err).Msg("Failed to join room")
		return
	}
	if content.IsDirect {
		b.markDirect(evt.RoomID, true)
	}
	log.Info().Bool("direct", content.IsDirect).Msg("Joined room on invite")
}

func (b *Bot) handleMessage(ctx context.Context, evt *event.Event) {
	if evt.Sender == b.client.UserID {
		return
	}
	content := evt.Content.AsMessage()
	if content.MsgType != event.MsgText {
		return
	}
	if rel := content.RelatesTo; rel != nil && rel.Type == event.RelReplace {
		return
	}
	question, isCommand := parseQuestion(b.cfg.Matrix.CommandPrefix, content.Body)
	if !isCommand && !b.isDirectChat(ctx, evt.RoomID) {
		return
	}
	log := b.log.With().
		Stringer("room_id", evt.RoomID).
		Stringer("sender", evt.Sender).
		Logger()
	if question == "" {
		b.sendNotice(log.WithContext(ctx), evt.RoomID, usageNotice)
		return
	}
	// Detached from the sync context so a slow upstream call neither
	// blocks other rooms nor gets cancelled by a sync restart.
	go b.answer(log.WithContext(context.Background()), evt.RoomID, question)
}

// parseQuestion extracts the question text from a message body. A body
// starting with the command prefix is always a question; anything else is
// only a question in a direct chat, which the caller decides.
func parseQuestion(prefix, body string) (question string, isCommand bool) {
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, prefix) {
		return body, false
	}
	rest := strings.TrimPrefix(body, prefix)
	if rest != "" && !strings.HasPrefix(rest, " ") {
		// Different command, e.g. "!askers" with prefix "!ask".
		return body, false
	}
	return strings.TrimSpace(rest), true
}

func (b *Bot) sendNotice(ctx context.Context, roomID id.RoomID, text string) {
	_, err := b.client.SendMessageEvent(ctx, roomID, event.EventMessage, &event.MessageEventContent{
		MsgType: event.MsgNotice,
		Body:    text,
	})
	if err != nil {
		b.log.Err(err).Stringer("room_id", roomID).Msg("Failed to send notice")
	}
}
