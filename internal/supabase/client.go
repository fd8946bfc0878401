package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"frames-studio/internal/config"
)

// Client wraps the supabase-go client used for portfolio records.
type Client struct {
	Supabase *supabase.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, &supabase.ClientOptions{
		Schema:  "public",
		Headers: map[string]string{"X-Client-Info": "frames-studio"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client for %s: %w", cfg.SupabaseURL, err)
	}

	return &Client{Supabase: client}, nil
}
