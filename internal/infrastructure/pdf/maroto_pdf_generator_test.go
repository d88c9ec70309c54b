package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

func TestGenerateStockReport(t *testing.T) {
	d := entity.Seed()
	data := report.BuildStockReportData(&d, "Super Administrateur", time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC))

	b, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "0", formatKg(0))
	assert.Equal(t, "999", formatKg(999))
	assert.Equal(t, "25 000", formatKg(25000))
	assert.Equal(t, "1 234 567", formatKg(1234567))
	assert.Equal(t, "-1 000", formatKg(-1000))
}
