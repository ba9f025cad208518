package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Procurement-api/internal/domain"
)

func TestNewReferenceNo_Formato(t *testing.T) {
	now := time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)
	ref := domain.NewReferenceNo("RFX", now)
	assert.Regexp(t, regexp.MustCompile(`^RFX-20250114-[0-9A-F]{6}$`), ref)
	assert.NotEqual(t, ref, domain.NewReferenceNo("RFX", now))
}

func TestNormalizeTags_PliegaYDeduplica(t *testing.T) {
	got := domain.NormalizeTags([]string{" Steel ", "STEEL", "", "Bolts", "steel", "ÉLITE", "élite"})
	assert.Equal(t, []string{"steel", "bolts", "élite"}, got)
}

func TestNormalizeTags_NilDevuelveVacio(t *testing.T) {
	got := domain.NormalizeTags(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
