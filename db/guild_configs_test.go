package db

import "testing"

func TestGetOrCreateGuildConfigIsIdempotent(t *testing.T) {
	setupTestDB(t)

	first, err := GetOrCreateGuildConfig("guild1")
	if err != nil {
		t.Fatalf("first access failed: %v", err)
	}
	if first == nil || first.GuildID != "guild1" {
		t.Fatalf("expected a default config for guild1, got %+v", first)
	}
	if first.IsOpen || first.QueueChannelID != "" || first.MinReviewsRequired != 0 {
		t.Fatalf("expected a closed unset default config, got %+v", first)
	}

	if err := SetQueueChannel("guild1", "chan1"); err != nil {
		t.Fatalf("set queue channel failed: %v", err)
	}

	second, err := GetOrCreateGuildConfig("guild1")
	if err != nil {
		t.Fatalf("second access failed: %v", err)
	}
	if second.QueueChannelID != "chan1" {
		t.Fatalf("second access lost the queue channel: %+v", second)
	}
}

func TestSettersCreateRowLazily(t *testing.T) {
	setupTestDB(t)

	if err := SetMinReviewsRequired("guild2", 3); err != nil {
		t.Fatalf("set min reviews failed: %v", err)
	}
	if err := SetGuildOpen("guild2", true); err != nil {
		t.Fatalf("set open failed: %v", err)
	}

	cfg, err := GetOrCreateGuildConfig("guild2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cfg.MinReviewsRequired != 3 || !cfg.IsOpen {
		t.Fatalf("expected min reviews 3 and open, got %+v", cfg)
	}
}

func TestGetAllGuildConfigs(t *testing.T) {
	setupTestDB(t)

	for _, guildID := range []string{"g1", "g2", "g3"} {
		if _, err := GetOrCreateGuildConfig(guildID); err != nil {
			t.Fatalf("create %s failed: %v", guildID, err)
		}
	}
	if err := SetQueueChannel("g2", "queue2"); err != nil {
		t.Fatalf("set queue channel failed: %v", err)
	}

	configs, err := GetAllGuildConfigs()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(configs) != 3 {
		t.Fatalf("expected 3 configs, got %d", len(configs))
	}
}
