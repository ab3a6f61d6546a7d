package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/format"
	"maunium.net/go/mautrix/id"

	"github.com/corvid-labs/corpusbot/pkg/msgfmt"
	"github.com/corvid-labs/corpusbot/pkg/vectara"
)

// answer runs one query pipeline instance: acknowledge with a placeholder,
// query, then replace the placeholder with the final content. All-or-
// nothing per query; on failure the user sees the generic error text and
// the full detail stays in the server log.
func (b *Bot) answer(ctx context.Context, roomID id.RoomID, question string) {
	log := zerolog.Ctx(ctx)
	start := time.Now()

	if *b.cfg.Matrix.TypingNotifications {
		if _, err := b.client.UserTyping(ctx, roomID, true, b.cfg.Vectara.RequestTimeout()); err == nil {
			defer func() {
				_, _ = b.client.UserTyping(ctx, roomID, false, 0)
			}()
		}
	}

	var placeholderID id.EventID
	resp, err := b.client.SendMessageEvent(ctx, roomID, event.EventMessage, &event.MessageEventContent{
		MsgType: event.MsgNotice,
		Body:    placeholderNotice,
	})
	if err != nil {
		// Answer as a fresh message instead of an edit.
		log.Warn().Err(err).Msg("Failed to send placeholder")
	} else {
		placeholderID = resp.EventID
	}

	queryCtx, cancel := context.WithTimeout(ctx, b.cfg.Vectara.RequestTimeout())
	defer cancel()
	result, err := b.query.Query(queryCtx, question)
	if err != nil {
		log.Err(err).Dur("elapsed", time.Since(start)).Msg("Query failed")
		b.deliver(ctx, roomID, placeholderID, errorNotice)
		return
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("source_count", len(result.Sources)).
		Msg("Answered question")
	b.deliver(ctx, roomID, placeholderID, buildAnswerText(result))
}

// deliver renders markdown into a Matrix message and sends it, editing the
// placeholder when there is one. Link previews are suppressed so citation
// URLs don't expand into embeds.
func (b *Bot) deliver(ctx context.Context, roomID id.RoomID, replace id.EventID, markdown string) {
	content := format.RenderMarkdown(markdown, true, false)
	content.MsgType = event.MsgText
	if replace != "" {
		content.SetEdit(replace)
	}
	wrapped := event.Content{
		Parsed: &content,
		Raw:    map[string]any{"com.beeper.linkpreviews": []any{}},
	}
	if _, err := b.client.SendMessageEvent(ctx, roomID, event.EventMessage, &wrapped); err != nil {
		zerolog.Ctx(ctx).Err(err).Msg("Failed to send answer")
	}
}

// buildAnswerText composes the user-visible answer from a query result.
func buildAnswerText(result *vectara.Result) string {
	text := msgfmt.CleanupMarkdown(result.Summary)
	if refs := msgfmt.FormatSources(result.Sources); refs != "" {
		text += "\n\n" + refs
	}
	return text
}
