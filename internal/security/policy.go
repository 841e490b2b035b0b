// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Command risk analysis

package security

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	sudoPattern         = regexp.MustCompile(`(^|[;&|(]\s*)sudo\s`)
	remoteScriptPattern = regexp.MustCompile(`(curl|wget)[^|]*\|\s*(sudo\s+)?(ba|z)?sh\b|(ba|z)?sh\s+<\(\s*(curl|wget)`)
	forceRemovePattern  = regexp.MustCompile(`\brm\s+(-[a-zA-Z]*r[a-zA-Z]*f|-[a-zA-Z]*f[a-zA-Z]*r|-r\s+-f|-f\s+-r|--recursive\s+--force|--force\s+--recursive)\b`)
	gitForcePattern     = regexp.MustCompile(`\bgit\s+(push\s+.*(--force|-f)\b|reset\s+--hard|clean\s+-[a-zA-Z]*f)`)
	fileWritePattern    = regexp.MustCompile(`(^|\s)(>>?|rm|mv|cp|mkdir|rmdir|touch|chmod|chown|tee)\s`)
)

// Checker analyzes commands against a policy. It never blocks anything;
// the result is shown to the user before they confirm.
type Checker struct {
	policy *Policy
}

// NewChecker creates a checker; nil selects DefaultPolicy
func NewChecker(policy *Policy) *Checker {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Checker{policy: policy}
}

// Analyze runs the default checker on cmd
func Analyze(cmd string) *Analysis {
	return NewChecker(nil).Analyze(cmd)
}

// Analyze grades a single command
func (c *Checker) Analyze(cmd string) *Analysis {
	analysis := newAnalysis(cmd)
	cmd = strings.TrimSpace(cmd)
	lowerCmd := strings.ToLower(cmd)

	for _, pattern := range c.policy.DestructivePatterns {
		if strings.Contains(lowerCmd, strings.ToLower(pattern)) {
			analysis.raise(RiskCritical, fmt.Sprintf("matches destructive pattern: %s", pattern))
			break
		}
	}

	if sudoPattern.MatchString(cmd) {
		analysis.RequiresSudo = true
		analysis.raise(RiskCritical, "command requires sudo privileges")
	}

	if remoteScriptPattern.MatchString(cmd) {
		if c.isTrustedURL(cmd) {
			analysis.raise(RiskHigh, "runs a remote install script")
		} else {
			analysis.raise(RiskCritical, "pipes a remote script from an unknown source into a shell")
		}
	}

	if forceRemovePattern.MatchString(cmd) {
		analysis.raise(RiskHigh, "recursively deletes files without confirmation")
	}

	if gitForcePattern.MatchString(cmd) {
		analysis.raise(RiskHigh, "discards or overwrites git history")
	}

	if c.detectsPackageManager(lowerCmd) {
		analysis.raise(RiskHigh, "system package manager command")
	}

	if dir, ok := c.detectsSystemDirectory(cmd); ok {
		analysis.raise(RiskHigh, fmt.Sprintf("touches system directory %s", dir))
	}

	if fileWritePattern.MatchString(cmd) {
		analysis.raise(RiskMedium, "")
	}

	return analysis
}

func (c *Checker) isTrustedURL(cmd string) bool {
	for _, url := range c.policy.TrustedURLs {
		if strings.Contains(cmd, url) {
			return true
		}
	}
	return false
}

func (c *Checker) detectsPackageManager(lowerCmd string) bool {
	for _, pm := range c.policy.PackageManagers {
		if strings.HasPrefix(lowerCmd, pm) || strings.Contains(lowerCmd, " "+pm) {
			return true
		}
	}
	return false
}

func (c *Checker) detectsSystemDirectory(cmd string) (string, bool) {
	for _, dir := range c.policy.SystemDirs {
		if strings.Contains(cmd, dir) {
			return dir, true
		}
	}
	return "", false
}
