// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration keys and resolved settings

package config

// EnvPrefix namespaces environment overrides, e.g. AI_MODEL
const EnvPrefix = "AI"

// Keys shared by the config file, the environment and the command line
const (
	KeyModel        = "model"
	KeyAssistant    = "assistant"
	KeySetupCommand = "setup_command"
	KeyWorktreesDir = "worktrees_dir"
	KeyKeepWorktree = "keep_worktree"
	KeyConfigDir    = "config_dir"
	KeyShell        = "shell"
)

// Keys lists every configuration key
var Keys = []string{
	KeyModel,
	KeyAssistant,
	KeySetupCommand,
	KeyWorktreesDir,
	KeyKeepWorktree,
	KeyConfigDir,
	KeyShell,
}

// Built-in defaults
const (
	DefaultAssistant = "claude"
	DefaultConfigDir = ".claude"
)

// File is the on-disk configuration
type File struct {
	Model        string `json:"model" yaml:"model"`
	Assistant    string `json:"assistant" yaml:"assistant"`
	SetupCommand string `json:"setup_command" yaml:"setup_command"`
	WorktreesDir string `json:"worktrees_dir" yaml:"worktrees_dir"`
	KeepWorktree *bool  `json:"keep_worktree" yaml:"keep_worktree"`
	ConfigDir    string `json:"config_dir" yaml:"config_dir"`
	Shell        string `json:"shell" yaml:"shell"`
}

// values returns the keys set in the file
func (f *File) values() map[string]interface{} {
	out := map[string]interface{}{}
	if f == nil {
		return out
	}

	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set(KeyModel, f.Model)
	set(KeyAssistant, f.Assistant)
	set(KeySetupCommand, f.SetupCommand)
	set(KeyWorktreesDir, f.WorktreesDir)
	set(KeyConfigDir, f.ConfigDir)
	set(KeyShell, f.Shell)
	if f.KeepWorktree != nil {
		out[KeyKeepWorktree] = *f.KeepWorktree
	}
	return out
}

// Config is the resolved configuration
type Config struct {
	Model        string
	Assistant    string
	SetupCommand string
	WorktreesDir string // empty selects the system temp directory
	KeepWorktree bool
	ConfigDir    string
	Shell        string // empty selects bash, then sh

	Source string // config file used, empty when none
}
