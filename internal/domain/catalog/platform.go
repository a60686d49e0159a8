package catalog

import (
	"regexp"
	"strings"
	"time"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{0,15}$`)

// Platform is keyed by its code, which is always stored uppercased.
type Platform struct {
	Code         string  `gorm:"type:varchar(16);primaryKey" json:"code"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Abbreviation *string `gorm:"type:varchar(16)" json:"abbreviation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode reports whether an already normalized code is well formed.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
