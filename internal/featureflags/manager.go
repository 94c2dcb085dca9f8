// Package featureflags evaluates runtime toggles for the Warbler API.
//
// Flags come from the FEATURE_FLAGS config value, a comma-separated list of
// name=value pairs layered over the built-in defaults. A value is a boolean
// (on/off/true/false/1/0) or a percentage rollout like "25%", which buckets
// users deterministically so a given account always sees the same answer.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Defaults are the flags every deployment starts with. FEATURE_FLAGS entries
// override them per environment.
var Defaults = map[string]string{
	"metrics_dashboard": "on",
}

// Manager answers flag queries for the lifetime of the process. A nil
// Manager reports every flag as disabled.
type Manager struct {
	flags map[string]string
}

// NewManager layers the raw FEATURE_FLAGS string over Defaults. Malformed
// pairs are skipped rather than rejected so a typo cannot take the API down.
func NewManager(raw string) *Manager {
	flags := make(map[string]string, len(Defaults))
	for name, value := range Defaults {
		flags[name] = value
	}

	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name = normalize(name)
		value = normalize(value)
		if name == "" || value == "" {
			continue
		}
		flags[name] = value
	}

	return &Manager{flags: flags}
}

// Enabled reports whether a flag is on for the given user. Unknown flags are
// off. Percentage rollouts need a real user; userID 0 (anonymous) is always
// outside the rollout.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}

	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	if !strings.HasSuffix(value, "%") {
		return false
	}
	pct, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil || pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	if userID == 0 {
		return false
	}
	return rolloutBucket(name, userID) < pct
}

// Snapshot evaluates every configured flag for one user. Clients fetch this
// once at load time to decide which surfaces to render.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	if m == nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rolloutBucket maps (flag, user) onto 0..99. The hash is stable across
// restarts so rollouts never flap for a user.
func rolloutBucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s/%d", normalize(name), userID)
	return int(h.Sum32() % 100)
}
