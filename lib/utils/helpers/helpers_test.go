package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`DigitsOnly strips non digits`, func(t *testing.T) {
		require.Equal(t, "0812345678", DigitsOnly("081-234-5678"))
		require.Equal(t, "1234567890123", DigitsOnly(" 1 2345 67890123x"))
		require.Equal(t, "", DigitsOnly("abc"))
	})

	t.Run(`DigitsOnly is idempotent`, func(t *testing.T) {
		once := DigitsOnly("0 81-23x45678")
		require.Equal(t, once, DigitsOnly(once))
	})

	t.Run(`HasThaiRune check`, func(t *testing.T) {
		require.True(t, HasThaiRune("สมชาย"))
		require.True(t, HasThaiRune("somchai ใจดี"))
		require.False(t, HasThaiRune("Somchai"))
		require.False(t, HasThaiRune(""))
	})

	t.Run(`IsEnglishFullName requires latin letters and an internal space`, func(t *testing.T) {
		require.True(t, IsEnglishFullName("Somchai Jaidee"))
		require.False(t, IsEnglishFullName("Somchai"))
		require.False(t, IsEnglishFullName("Somchai1 Jaidee"))
		require.False(t, IsEnglishFullName("สมชาย ใจดี"))
		require.False(t, IsEnglishFullName(""))
	})

	t.Run(`IsEmail check`, func(t *testing.T) {
		require.True(t, IsEmail("somchai@example.co.th"))
		require.False(t, IsEmail("somchai@example"))
		require.False(t, IsEmail("somchai.example.com"))
		require.False(t, IsEmail("som chai@example.com"))
		require.False(t, IsEmail("somchai@@example.com"))
		require.False(t, IsEmail(""))
	})
}
