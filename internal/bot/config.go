package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Telegram long-poll timeout in seconds
	UpdateTimeout int
	// Name of the document sent by /export
	ExportFileName string
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		UpdateTimeout:  60,
		ExportFileName: "frasebot_export.json",
	}
}
