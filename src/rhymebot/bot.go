// Package rhymebot answers pronunciation, rhyme and haiku questions in Discord.
package rhymebot

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// maxMessageLength is Discord's limit on message content.
const maxMessageLength = 2000

type Config struct {
	Token      string
	Prefix     string
	MaxResults int

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tPrefix: %s\n\tMaxResults: %d\n\tDebug: %t\n", c.Prefix, c.MaxResults, c.Debug)
}

type RhymeBot struct {
	session *discordgo.Session

	config    Config
	responder *Responder

	dmMu    sync.Mutex
	dmCache map[string]*discordgo.Channel
}

func NewRhymeBot(config Config, responder *Responder) *RhymeBot {
	log.Infof("Rhyme Bot Config:\n%v", config)
	return &RhymeBot{
		config:    config,
		responder: responder,
		dmCache:   make(map[string]*discordgo.Channel),
	}
}

func (b *RhymeBot) Open() error {
	var err error
	b.session, err = discordgo.New("Bot " + b.config.Token)
	if err != nil {
		log.Error("error creating Discord session", "err", err)
		return err
	}

	if b.config.Debug {
		b.session.LogLevel = discordgo.LogDebug
	}

	b.session.AddHandler(b.ReceiveNewMessage)

	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	err = b.session.Open()
	if err != nil {
		log.Error("error opening connection", "err", err)
		return err
	}
	return nil
}

func (b *RhymeBot) Close() error {
	return b.session.Close()
}

func (b *RhymeBot) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered from panic", "content", oneLine(m.Content), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	if m.Author == nil || m.Author.Bot { // don't talk to bots
		return
	}
	cmd, err := ParseCommand(m.Content, b.config.Prefix)
	if errors.Is(err, ErrNotCommand) {
		return
	}
	if err != nil {
		b.reply(s, m, err.Error())
		return
	}
	log.Debug("received command", "op", cmd.Name, "arg", oneLine(cmd.Arg), "author", m.Author.ID)

	response, err := b.responder.Respond(cmd)
	if err != nil {
		b.reply(s, m, err.Error())
		return
	}
	if cmd.Operation == OpHelp && m.GuildID != "" {
		b.sendDM(s, m, response) // keep help out of busy channels
		return
	}
	b.reply(s, m, response)
}

func (b *RhymeBot) reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	ref := &discordgo.MessageReference{MessageID: m.ID, ChannelID: m.ChannelID, GuildID: m.GuildID}
	_, err := s.ChannelMessageSendReply(m.ChannelID, truncate(content), ref)
	if err != nil {
		log.Error("could not send reply", "channel", m.ChannelID, "err", err)
	}
}

func (b *RhymeBot) sendDM(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	dmChannel, err := b.createDMChannel(s, m.Author.ID)
	if err != nil {
		log.Error("could not create user DM channel", "err", err)
		b.reply(s, m, content)
		return
	}
	if _, err = s.ChannelMessageSend(dmChannel.ID, truncate(content)); err != nil {
		log.Error("could not send message to user DM channel", "err", err)
	}
}

func (b *RhymeBot) createDMChannel(s *discordgo.Session, authorID string) (*discordgo.Channel, error) {
	b.dmMu.Lock()
	defer b.dmMu.Unlock()
	if c, ok := b.dmCache[authorID]; ok {
		return c, nil
	}
	c, err := s.UserChannelCreate(authorID)
	if err != nil {
		return nil, err
	}
	log.Debug("retrieved new DM channel for user", "user", authorID)
	b.dmCache[authorID] = c
	return c, nil
}

func truncate(content string) string {
	if len(content) <= maxMessageLength {
		return content
	}
	const ellipsis = "..."
	cut := maxMessageLength - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + ellipsis
}

func oneLine(str string) string {
	return strings.ReplaceAll(str, "\n", "\\n")
}
