package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.OpenAI.MaxTokens == 0 {
		cfg.OpenAI.MaxTokens = 150
	}
	if cfg.Answer.PageExcerptLimit == 0 {
		cfg.Answer.PageExcerptLimit = 5000
	}
	if cfg.Answer.CSVPreviewRows == 0 {
		cfg.Answer.CSVPreviewRows = 10
	}
	if cfg.Answer.FetchTimeoutSeconds == 0 {
		cfg.Answer.FetchTimeoutSeconds = 30
	}
}
