package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"

	"skill-insight/internal/domain/posting"
)

type viewCacheKeyInput struct {
	View   View     `json:"view"`
	Skill  string   `json:"skill,omitempty"`
	Role   string   `json:"role,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Params []int    `json:"params,omitempty"`
}

// Roles are matched against job titles trimmed at load, so internal
// whitespace must survive.
func normalizeRole(s string) string {
	return strings.TrimSpace(s)
}

// ViewCacheKey derives a key from the dataset fingerprint, the view and the
// normalized selection, so a reloaded dataset never reads stale views.
func ViewCacheKey(fingerprint string, view View, sel Selection, params ...int) string {
	skills := make([]string, 0)
	for s := range posting.ParseSkillSet(sel.Skills) {
		skills = append(skills, s)
	}
	slices.Sort(skills)

	in := viewCacheKeyInput{
		View:   view,
		Skill:  posting.NormalizeSkill(sel.Skill),
		Role:   normalizeRole(sel.Role),
		Skills: skills,
		Params: params,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return ViewCachePrefix(fingerprint) + hex.EncodeToString(sum[:])
}

// ViewCachePattern matches cached views of every dataset fingerprint.
const ViewCachePattern = "views:*"

func ViewCachePrefix(fingerprint string) string {
	fp := strings.TrimSpace(fingerprint)
	if len(fp) > 16 {
		fp = fp[:16]
	}
	return "views:" + fp + ":"
}
