package bot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/example/frasebot/internal/ai"
	"github.com/example/frasebot/internal/scheduler"
	"github.com/example/frasebot/internal/trainer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot presents a trainer session to a single learner over Telegram
type Bot struct {
	api              *tgbotapi.BotAPI
	token            string
	trainer          *trainer.Trainer
	assistant        *ai.Assistant
	config           *BotConfig
	scheduler        *scheduler.Scheduler
	schedulerEnabled bool
	allowedUserID    int64

	// One user action mutates the trainer at a time
	mu         sync.Mutex
	chatID     int64
	lastResult *trainer.Result
}

// New creates a new bot instance over an existing trainer session
func New(tr *trainer.Trainer) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	var allowed int64
	if idStr := os.Getenv("ALLOWED_USER_ID"); idStr != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			log.Printf("Warning: invalid ALLOWED_USER_ID: %s", idStr)
		} else {
			allowed = id
		}
	}

	var assistant *ai.Assistant
	if os.Getenv("OPENAI_API_KEY") != "" {
		a, err := ai.New()
		if err != nil {
			log.Printf("Warning: unable to initialize OpenAI client: %v", err)
		} else {
			assistant = a
		}
	}

	return &Bot{
		token:            token,
		trainer:          tr,
		assistant:        assistant,
		config:           DefaultConfig(),
		schedulerEnabled: os.Getenv("ENABLE_SCHEDULER") != "false",
		allowedUserID:    allowed,
	}, nil
}

// Start connects to Telegram and handles updates until the channel closes
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}
	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b, b)
		b.scheduler.Start()
	}

	for update := range updates {
		b.handleUpdate(update)
	}
	return nil
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.schedulerEnabled && b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Println("Bot stopped")
}

// DueCount implements scheduler.DueCounter
func (b *Bot) DueCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trainer.Stats().DueToday
}

// SendDueReminder implements scheduler.Notifier
func (b *Bot) SendDueReminder(count int) error {
	b.mu.Lock()
	chatID := b.chatID
	b.mu.Unlock()
	if chatID == 0 {
		// Personal chats share the user id
		chatID = b.allowedUserID
	}
	if chatID == 0 {
		return fmt.Errorf("no chat seen yet, cannot send reminder")
	}

	text := fmt.Sprintf("You have %d phrases waiting for review! Send /next to practice.", count)
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	message := update.Message
	if b.allowedUserID != 0 && message.From != nil && message.From.ID != b.allowedUserID {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.chatID = message.Chat.ID

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}
	b.handleAnswer(message)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start":
		b.handleStart(chatID)
	case "next":
		b.sendNextPhrase(chatID)
	case "skip":
		b.handleSkip(chatID)
	case "stats":
		b.handleStats(chatID)
	case "export":
		b.handleExport(chatID)
	case "reset":
		b.handleReset(chatID)
	case "hint":
		b.handleHint(chatID)
	case "help":
		b.handleHelp(chatID)
	default:
		b.reply(chatID, "Unknown command. Send /help for the list of commands.")
	}
}

func (b *Bot) handleStart(chatID int64) {
	stats := b.trainer.Stats()
	b.reply(chatID, fmt.Sprintf(
		"Welcome to frasebot! %d phrases loaded, %d due for review.\nType your translation after each phrase. Send /help for all commands.",
		stats.TotalPhrases, stats.DueToday,
	))
	b.sendNextPhrase(chatID)
}

func (b *Bot) handleHelp(chatID int64) {
	b.reply(chatID, strings.Join([]string{
		"/next — show the next phrase",
		"/skip — skip the current phrase",
		"/stats — review statistics for today",
		"/hint — explain your last mistake",
		"/export — download your progress as JSON",
		"/reset — erase all progress and start over",
	}, "\n"))
}

func (b *Bot) sendNextPhrase(chatID int64) {
	phrase, err := b.trainer.Next()
	if err != nil {
		log.Printf("Error selecting next phrase: %v", err)
		b.reply(chatID, "No phrases available.")
		return
	}

	text := fmt.Sprintf("Translate:\n\n%s", phrase.SourceText)
	if phrase.Level != "" {
		text = fmt.Sprintf("Translate (%s):\n\n%s", phrase.Level, phrase.SourceText)
	}
	b.reply(chatID, text)
}

func (b *Bot) handleAnswer(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if _, ok := b.trainer.Current(); !ok {
		b.reply(chatID, "Send /next to get a phrase first.")
		return
	}

	res, err := b.trainer.Submit(message.Text)
	if err != nil {
		log.Printf("Error judging answer: %v", err)
		b.reply(chatID, "Something went wrong, send /next to continue.")
		return
	}
	b.lastResult = &res

	if res.Correct {
		b.reply(chatID, "✅ Correct!")
	} else {
		b.reply(chatID, fmt.Sprintf("❌ Expected: %s", res.Expected))
	}
	b.sendNextPhrase(chatID)
}

func (b *Bot) handleSkip(chatID int64) {
	if err := b.trainer.Skip(); err != nil {
		b.reply(chatID, "Nothing to skip. Send /next to get a phrase.")
		return
	}
	b.sendNextPhrase(chatID)
}

func (b *Bot) handleStats(chatID int64) {
	stats := b.trainer.Stats()
	text := fmt.Sprintf(
		"Due today: %d of %d phrases\nToday: %d correct, %d wrong\nLevel: %s",
		stats.DueToday, stats.TotalPhrases,
		stats.Today.Correct, stats.Today.Wrong,
		b.trainer.CurrentLevel(),
	)
	if stats.Struggling > 0 {
		text += fmt.Sprintf("\nStruggling with: %d phrases", stats.Struggling)
	}
	if next, ok := b.trainer.Preview(); ok {
		text += fmt.Sprintf("\nNext up: %s", next.SourceText)
	}
	b.reply(chatID, text)
}

func (b *Bot) handleExport(chatID int64) {
	data, err := b.trainer.Export()
	if err != nil {
		log.Printf("Error exporting progress: %v", err)
		b.reply(chatID, "Export failed.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  b.config.ExportFileName,
		Bytes: data,
	})
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending export to chat %d: %v", chatID, err)
	}
}

func (b *Bot) handleReset(chatID int64) {
	if err := b.trainer.Reset(); err != nil {
		log.Printf("Error resetting progress: %v", err)
		b.reply(chatID, "Reset failed, your progress is unchanged.")
		return
	}
	b.lastResult = nil
	b.reply(chatID, "All progress erased. Send /next to start over.")
}

func (b *Bot) handleHint(chatID int64) {
	if b.lastResult == nil {
		b.reply(chatID, "Answer a phrase first, then ask for a hint.")
		return
	}
	if b.lastResult.Correct {
		b.reply(chatID, "Your last answer was correct, nothing to explain.")
		return
	}
	if b.assistant == nil {
		b.reply(chatID, fmt.Sprintf("Expected: %s\nYou wrote: %s", b.lastResult.Expected, b.lastResult.Answer))
		return
	}

	explanation, err := b.assistant.ExplainMistake(
		b.lastResult.Phrase.SourceText, b.lastResult.Expected, b.lastResult.Answer,
	)
	if err != nil {
		log.Printf("Error getting explanation: %v", err)
		b.reply(chatID, fmt.Sprintf("Expected: %s\nYou wrote: %s", b.lastResult.Expected, b.lastResult.Answer))
		return
	}
	b.reply(chatID, explanation)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
	}
}
