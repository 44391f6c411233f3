package timeprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFakeTimeProviderNow(t *testing.T) {
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	provider := NewFakeTimeProvider(start)
	require.Equal(t, start, provider.Now())
}

func TestFakeTimeProviderAdvanceTimeBy(t *testing.T) {
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	provider := NewFakeTimeProvider(start)
	provider.AdvanceTimeBy(45 * time.Minute)

	require.Equal(t, start.Add(45*time.Minute), provider.Now())
}

func TestFakeTimeProviderAdvanceTimeTo(t *testing.T) {
	var (
		start = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		later = time.Date(2024, time.March, 1, 17, 30, 0, 0, time.UTC)
	)

	provider := NewFakeTimeProvider(start)
	provider.AdvanceTimeTo(later)

	require.Equal(t, later, provider.Now())
}
