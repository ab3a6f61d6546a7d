// Package bot wires the Matrix side: it receives chat events, extracts
// questions, runs them through the query client, and posts formatted
// answers back. The query and formatting layers stay oblivious to Matrix.
package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/corvid-labs/corpusbot/pkg/vectara"
)

type Bot struct {
	cfg    *Config
	log    zerolog.Logger
	client *mautrix.Client
	query  *vectara.Client

	dmLock  sync.Mutex
	dmRooms map[id.RoomID]bool
}

// New builds the bot and registers one handler per event type on the
// syncer. The query client gets its own HTTP client; nothing here is a
// process-wide singleton.
func New(cfg *Config, log zerolog.Logger) (*Bot, error) {
	client, err := mautrix.NewClient(cfg.Matrix.HomeserverURL, cfg.Matrix.UserID, cfg.Matrix.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix client: %w", err)
	}
	client.Log = log.With().Str("component", "matrix").Logger()

	bot := &Bot{
		cfg:     cfg,
		log:     log,
		client:  client,
		query:   vectara.New(cfg.Vectara, nil),
		dmRooms: make(map[id.RoomID]bool),
	}

	syncer := client.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnEventType(event.StateMember, bot.handleMembership)
	syncer.OnEventType(event.EventMessage, bot.handleMessage)
	syncer.OnSync(client.DontProcessOldEvents)

	return bot, nil
}

// Run starts the sync loop and blocks until the context is cancelled or
// syncing fails.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info().
		Stringer("user_id", b.cfg.Matrix.UserID).
		Str("corpus_key", b.cfg.Vectara.CorpusKey).
		Str("api_key", redactKey(b.cfg.Vectara.APIKey)).
		Msg("Starting sync")
	return b.client.SyncWithContext(ctx)
}

// isDirectChat reports whether a room only has the bot and one other
// member. Membership is fetched once per room and cached.
func (b *Bot) isDirectChat(ctx context.Context, roomID id.RoomID) bool {
	b.dmLock.Lock()
	direct, cached := b.dmRooms[roomID]
	b.dmLock.Unlock()
	if cached {
		return direct
	}
	members, err := b.client.JoinedMembers(ctx, roomID)
	if err != nil {
		b.log.Warn().Err(err).Stringer("room_id", roomID).Msg("Failed to fetch room members")
		return false
	}
	direct = len(members.Joined) <= 2
	b.markDirect(roomID, direct)
	return direct
}

func (b *Bot) markDirect(roomID id.RoomID, direct bool) {
	b.dmLock.Lock()
	b.dmRooms[roomID] = direct
	b.dmLock.Unlock()
}
