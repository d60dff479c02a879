package thainum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBahtText(t *testing.T) {
	t.Run(`zero and negative give empty string`, func(t *testing.T) {
		require.Equal(t, "", BahtText(0))
		require.Equal(t, "", BahtText(-5))
	})

	t.Run(`single units`, func(t *testing.T) {
		require.Equal(t, "หนึ่งบาทถ้วน", BahtText(1))
		require.Equal(t, "ห้าบาทถ้วน", BahtText(5))
		require.Equal(t, "เก้าบาทถ้วน", BahtText(9))
	})

	t.Run(`tens with trailing เอ็ด`, func(t *testing.T) {
		require.Equal(t, "สิบบาทถ้วน", BahtText(10))
		require.Equal(t, "สิบเอ็ดบาทถ้วน", BahtText(11))
		// no ยี่สิบ irregular form, twenty stays regular
		require.Equal(t, "สองสิบเอ็ดบาทถ้วน", BahtText(21))
		require.Equal(t, "เก้าสิบเก้าบาทถ้วน", BahtText(99))
	})

	t.Run(`เอ็ด only applies when a tens digit is present`, func(t *testing.T) {
		require.Equal(t, "หนึ่งร้อยหนึ่งบาทถ้วน", BahtText(101))
	})

	t.Run(`hundreds`, func(t *testing.T) {
		require.Equal(t, "หนึ่งร้อยบาทถ้วน", BahtText(100))
		require.Equal(t, "หนึ่งร้อยสามสิบบาทถ้วน", BahtText(130))
	})

	t.Run(`grouping only at thousand boundaries`, func(t *testing.T) {
		// 25 thousand, not สองหมื่นห้าพัน
		require.Equal(t, "สองสิบห้าพันบาทถ้วน", BahtText(25000))
		require.Equal(t, "สิบห้าพันห้าร้อยบาทถ้วน", BahtText(15500))
	})

	t.Run(`millions and billions`, func(t *testing.T) {
		require.Equal(t, "หนึ่งล้านบาทถ้วน", BahtText(1000000))
		require.Equal(t, "สองล้านสามร้อยพันบาทถ้วน", BahtText(2300000))
		require.Equal(t, "หนึ่งพันล้านบาทถ้วน", BahtText(1000000000))
	})

	t.Run(`idempotent for a fixed input`, func(t *testing.T) {
		require.Equal(t, BahtText(130), BahtText(130))
	})
}
