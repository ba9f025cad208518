package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// NewReferenceNo genera un número legible PREFIX-YYYYMMDD-XXXXXX (ej. RFX-20250114-3F9A1C).
func NewReferenceNo(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return prefix + "-" + now.Format("20060102") + "-" + strings.ToUpper(suffix)
}

// NormalizeTags recorta, pliega mayúsculas/minúsculas y elimina duplicados conservando el orden.
// Nunca devuelve nil.
func NormalizeTags(tags []string) []string {
	fold := cases.Fold()
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = fold.String(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
