package model

// Config is the top-level structure of config.yaml.
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
}

// Commands holds command registration and permission settings.
type Commands struct {
	AllowGuilds []string `mapstructure:"allowguilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth lists the users and roles allowed to run admin commands.
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}
