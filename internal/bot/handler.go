package bot

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v3"

	"github.com/Yab112/BemniTelegeramBot/internal/countdown"
	"github.com/Yab112/BemniTelegeramBot/internal/schedule"
	"github.com/Yab112/BemniTelegeramBot/internal/store"
)

// markdownV2 applies to everything the bot sends; countdown already
// escapes the text to match.
var markdownV2 = &tele.SendOptions{ParseMode: tele.ModeMarkdownV2}

type Bot struct {
	api   *tele.Bot
	store store.DeadlinesStore
	sched *schedule.Scheduler
	cfg   Config
	loc   *time.Location
	me    int64
	now   func() time.Time
}

type Config struct {
	Token string
	// Clock is the daily reminder time in HH:MM form.
	Clock string
	// Zone is the IANA timezone the reminder clock is read in.
	Zone string
}

func New(cfg Config, deadlines store.DeadlinesStore) (*Bot, error) {
	clock, err := time.Parse("15:04", cfg.Clock)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid reminder time %q", cfg.Clock)
	}
	loc, err := time.LoadLocation(cfg.Zone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid reminder timezone %q", cfg.Zone)
	}

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		Client: &http.Client{Timeout: 30 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Errorf("Update caused error: %v", err)
		},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		api:   api,
		store: deadlines,
		cfg:   cfg,
		loc:   loc,
		me:    api.Me.ID,
		now:   time.Now,
	}
	bot.sched = schedule.New(bot, loc, clock.Hour(), clock.Minute())
	bot.register()
	return bot, nil
}

// Start restores stored schedules, then blocks polling for updates.
func (b *Bot) Start() error {
	deadlines, err := b.store.FetchDeadlines()
	if err != nil {
		return err
	}
	b.sched.Restore(deadlines)
	b.sched.Start()

	log.Infof("Bot started: %s", b.api.Me.Username)
	b.api.Start()
	return nil
}

// Stop ends polling and waits for a running reminder to finish.
func (b *Bot) Stop() {
	b.api.Stop()
	b.sched.Stop()
}

func (b *Bot) register() {
	b.api.Handle(tele.OnMyChatMember, b.handleMembership)

	// Group text that isn't a command is treated as deadline input.
	b.api.Handle(tele.OnText, b.handleDeadline)
}

// handleMembership greets groups the bot joins and cleans up after the
// ones it leaves.
func (b *Bot) handleMembership(c tele.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.NewChatMember == nil || upd.NewChatMember.User == nil {
		return nil
	}
	if upd.NewChatMember.User.ID != b.me {
		return nil
	}
	groupID := upd.Chat.ID

	switch upd.NewChatMember.Role {
	case tele.Member, tele.Administrator:
		// The group may have set a deadline before the bot was
		// re-added; put it back on the schedule.
		due, err := b.store.FetchDeadline(groupID)
		switch err {
		case nil:
			if err := b.sched.Set(groupID, due); err != nil {
				return err
			}
		case store.ErrDeadlineNotFound:
		default:
			return err
		}
		return c.Send(countdown.Welcome(), markdownV2)

	case tele.Left, tele.Kicked:
		b.sched.Remove(groupID)
		return b.store.DeleteDeadline(groupID)
	}
	return nil
}

// handleDeadline parses a group message as a YYYY-MM-DD deadline and
// starts the daily countdown for it.
func (b *Bot) handleDeadline(c tele.Context) error {
	chat := c.Chat()
	if chat == nil || (chat.Type != tele.ChatGroup && chat.Type != tele.ChatSuperGroup) {
		return nil
	}

	text := c.Text()
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	due, err := countdown.ParseDate(text)
	if err != nil {
		return c.Send(countdown.InvalidFormat(), markdownV2)
	}

	days := countdown.DaysUntil(due, b.now().In(b.loc))
	if days < 0 {
		return c.Send(countdown.PastDate(), markdownV2)
	}

	if err := b.store.SetDeadline(chat.ID, due); err != nil {
		return err
	}
	if err := b.sched.Set(chat.ID, due); err != nil {
		return err
	}

	if err := c.Send(countdown.Confirmation(due, days, b.cfg.Clock, b.cfg.Zone), markdownV2); err != nil {
		return err
	}

	// First countdown goes out right away; the rest arrive on the
	// daily schedule.
	return c.Send(countdown.Format(days), markdownV2)
}

// SendCountdown implements schedule.Sender.
func (b *Bot) SendCountdown(groupID int64, days int) error {
	_, err := b.api.Send(tele.ChatID(groupID), countdown.Format(days), markdownV2)
	return err
}
