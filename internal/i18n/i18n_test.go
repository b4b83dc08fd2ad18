package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLabelLookupAndFallback(t *testing.T) {
	b := NewBundle("en")
	require.Equal(t, "Today", b.Label("today"))
	require.Equal(t, "missing_key", b.Label("missing_key"))
}

func TestUnknownLocaleDefaultsToEnglish(t *testing.T) {
	b := NewBundle("fr")
	require.Equal(t, "en", b.Locale())
	require.Equal(t, "Today", b.Label("today"))
}

func TestMonthShortPerLocale(t *testing.T) {
	require.Equal(t, "May", NewBundle("en").MonthShort(time.May))
	require.Equal(t, "máj", NewBundle("sk").MonthShort(time.May))
	require.Equal(t, "", NewBundle("en").MonthShort(time.Month(13)))
}
