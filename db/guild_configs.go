package db

import (
	"database/sql"
	"fmt"

	"lvlreq/model"
)

const guildConfigColumns = `guild_id, queue_channel_id, archive_channel_id, reviewer_role_id,
	min_reviews_required, max_queued_per_user, is_open`

// scanGuildConfig scans a row into a GuildConfig struct.
func scanGuildConfig(scanner rowScanner) (*model.GuildConfig, error) {
	var cfg model.GuildConfig
	var isOpen int
	err := scanner.Scan(
		&cfg.GuildID, &cfg.QueueChannelID, &cfg.ArchiveChannelID, &cfg.ReviewerRoleID,
		&cfg.MinReviewsRequired, &cfg.MaxQueuedPerUser, &isOpen,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	cfg.IsOpen = isOpen == 1
	return &cfg, nil
}

// GetOrCreateGuildConfig returns the guild's level request config, creating a
// default closed one on first access. Safe to call concurrently for the same
// guild: the insert is a no-op once the row exists.
func GetOrCreateGuildConfig(guildID string) (*model.GuildConfig, error) {
	_, err := DB.Exec("INSERT OR IGNORE INTO guild_configs(guild_id) VALUES(?)", guildID)
	if err != nil {
		return nil, err
	}

	row := DB.QueryRow("SELECT "+guildConfigColumns+" FROM guild_configs WHERE guild_id = ?", guildID)
	return scanGuildConfig(row)
}

// GetAllGuildConfigs returns the config of every guild known to the bot.
func GetAllGuildConfigs() ([]*model.GuildConfig, error) {
	rows, err := DB.Query("SELECT " + guildConfigColumns + " FROM guild_configs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*model.GuildConfig
	for rows.Next() {
		cfg, err := scanGuildConfig(rows)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			configs = append(configs, cfg)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return configs, nil
}

// setGuildConfigField ensures the guild row exists and updates a single column.
func setGuildConfigField(guildID, field string, value interface{}) error {
	if _, err := DB.Exec("INSERT OR IGNORE INTO guild_configs(guild_id) VALUES(?)", guildID); err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE guild_configs SET %s = ? WHERE guild_id = ?", field)
	_, err := DB.Exec(query, value, guildID)
	return err
}

// SetQueueChannel sets the submission queue channel for a guild.
func SetQueueChannel(guildID, channelID string) error {
	return setGuildConfigField(guildID, "queue_channel_id", channelID)
}

// SetArchiveChannel sets the reviewed submissions channel for a guild.
func SetArchiveChannel(guildID, channelID string) error {
	return setGuildConfigField(guildID, "archive_channel_id", channelID)
}

// SetReviewerRole sets the role allowed to review submissions in a guild.
func SetReviewerRole(guildID, roleID string) error {
	return setGuildConfigField(guildID, "reviewer_role_id", roleID)
}

// SetMinReviewsRequired sets how many reviews close out a submission.
func SetMinReviewsRequired(guildID string, count int) error {
	return setGuildConfigField(guildID, "min_reviews_required", count)
}

// SetMaxQueuedPerUser sets the cap on outstanding submissions per author.
func SetMaxQueuedPerUser(guildID string, count int) error {
	return setGuildConfigField(guildID, "max_queued_per_user", count)
}

// SetGuildOpen opens or closes the submission queue for a guild.
func SetGuildOpen(guildID string, open bool) error {
	value := 0
	if open {
		value = 1
	}
	return setGuildConfigField(guildID, "is_open", value)
}
