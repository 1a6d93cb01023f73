package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*3600)

	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "2024-03-01T12:30:00Z", want: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{input: "2024-03-01T12:30:00.000+01:00", want: time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)},
		{input: "2024-03-01T12:30:00.123456789Z", want: time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)},
		{input: "2024-03-01T12:30:00", want: time.Date(2024, 3, 1, 12, 30, 0, 0, tokyo)},
		{input: "2024-03-01T12:30", want: time.Date(2024, 3, 1, 12, 30, 0, 0, tokyo)},
		{input: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo)},
		{input: " 2024-03-01 ", want: time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTimestamp(tt.input, tokyo)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTimestamp("01/03/2024", tokyo)
	assert.Error(t, err)
}

func TestFormatTimestamp_RoundTrips(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01T12:30:00.000Z", FormatTimestamp(in))

	warsaw := time.FixedZone("CET", 3600)
	assert.Equal(t, "2024-03-01T13:30:00.000+01:00", FormatTimestamp(in.In(warsaw)))

	out, err := ParseTimestamp(FormatTimestamp(in), time.Local)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
