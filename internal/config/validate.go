package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// maxNodeID is the largest snowflake node id (10 bits).
const maxNodeID = 1023

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	if c.IDs.NodeID < 0 || c.IDs.NodeID > maxNodeID {
		return fmt.Errorf("ids.node_id must be in [0, %d] (got %d)", maxNodeID, c.IDs.NodeID)
	}

	if c.Cache.Enabled() && c.Cache.TrustTTL <= 0 {
		return fmt.Errorf("cache.trust_ttl must be > 0 (got %v)", c.Cache.TrustTTL)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.MinAnswerLength <= 0 {
		return fmt.Errorf("min_answer_length must be > 0 (got %d)", m.MinAnswerLength)
	}
	if m.MaxAnswerLength < m.MinAnswerLength {
		return fmt.Errorf("max_answer_length must be >= min_answer_length (got %d < %d)", m.MaxAnswerLength, m.MinAnswerLength)
	}

	roles := []struct {
		name string
		raw  string
		dst  *[]string
	}{
		{"reporter_roles", m.ReporterRolesRaw, &m.ReporterRoles},
		{"arbiter_roles", m.ArbiterRolesRaw, &m.ArbiterRoles},
		{"reviewer_roles", m.ReviewerRolesRaw, &m.ReviewerRoles},
		{"admin_roles", m.AdminRolesRaw, &m.AdminRoles},
	}
	for _, r := range roles {
		parsed, err := ParseRoles(r.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
		if len(parsed) == 0 {
			return fmt.Errorf("%s must name at least one role", r.name)
		}
		*r.dst = parsed
	}

	m.BannedWords = ParseList(m.BannedWordsRaw)
	return nil
}

// ParseRoles parses a comma-separated list of role names and rejects
// unknown roles.
func ParseRoles(raw string) ([]string, error) {
	roles := ParseList(raw)
	for _, r := range roles {
		if !domain.Role(r).IsValid() {
			return nil, fmt.Errorf("unknown role %q", r)
		}
	}
	return roles, nil
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns an empty, non-nil slice.
func ParseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
