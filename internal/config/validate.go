package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Subtitle.validate(); err != nil {
		return fmt.Errorf("subtitle: %w", err)
	}
	if err := c.Quotes.validate(); err != nil {
		return fmt.Errorf("quotes: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}

func (s *SubtitleConfig) validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", s.Workers)
	}
	if s.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", s.QueueSize)
	}
	if s.MaxUploadBytes < 1 {
		return fmt.Errorf("max_upload_bytes must be >= 1 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (q *QuotesConfig) validate() error {
	if q.DefaultRadius < 0 {
		return fmt.Errorf("default_radius must be >= 0 (got %d)", q.DefaultRadius)
	}
	if q.MaxRadius < q.DefaultRadius {
		return fmt.Errorf("max_radius must be >= default_radius (got %d < %d)", q.MaxRadius, q.DefaultRadius)
	}
	return nil
}
