// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Security types and configuration

package security

// Risk grades how much damage a command can do
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Policy holds the patterns the analyzer looks for
type Policy struct {
	DestructivePatterns []string // always critical
	TrustedURLs         []string // remote installers that only raise a warning
	SystemDirs          []string
	PackageManagers     []string
}

// DefaultPolicy returns the default analysis policy
func DefaultPolicy() *Policy {
	return &Policy{
		DestructivePatterns: []string{
			"rm -rf /",
			"rm -rf /*",
			"rm -rf ~",
			"rm -rf $HOME",
			"mkfs",
			"dd if=/dev/zero",
			"dd if=/dev/random",
			"shutdown",
			"reboot",
			"halt",
			"poweroff",
			"chmod -R 777 /",
			"chmod 777 /",
			":(){:|:&};:",     // fork bomb
			"> /dev/sda",      // disk wipe
			"mv /* /dev/null", // move everything to null
		},
		TrustedURLs: []string{
			"https://sh.rustup.rs",
			"https://get.docker.com",
			"https://raw.githubusercontent.com/nvm-sh/nvm",
			"https://pyenv.run",
			"https://install.python-poetry.org",
		},
		SystemDirs: []string{
			"/usr/",
			"/etc/",
			"/var/",
			"/opt/",
			"/bin/",
			"/sbin/",
			"/lib/",
			"/boot/",
			"C:\\Windows",
			"C:\\Program Files",
		},
		PackageManagers: []string{
			"apt ", "apt-get ", "aptitude ",
			"yum ", "dnf ", "zypper ",
			"pacman ", "emerge ",
			"brew install", "brew upgrade", "brew uninstall",
			"port install",
			"choco install",
			"winget install",
			"snap install",
			"flatpak install",
		},
	}
}

// Analysis is the advisory result for one command
type Analysis struct {
	Command      string
	Risk         Risk
	RequiresSudo bool
	Warnings     []string
}

func newAnalysis(cmd string) *Analysis {
	return &Analysis{
		Command:  cmd,
		Risk:     RiskLow,
		Warnings: []string{},
	}
}

// raise bumps the risk to at least r and records the warning
func (a *Analysis) raise(r Risk, warning string) {
	if r > a.Risk {
		a.Risk = r
	}
	if warning != "" {
		a.Warnings = append(a.Warnings, warning)
	}
}
