package yui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/yui/pkg/yui"
)

func TestDateOrderForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   yui.DateOrder
	}{
		{"en_US.UTF-8", yui.OrderMDY},
		{"de_DE.UTF-8", yui.OrderDMY},
		{"de_DE@euro", yui.OrderDMY},
		{"ja_JP.UTF-8", yui.OrderYMD},
		{"sv_SE", yui.OrderYMD},
		{"C", yui.OrderYMD},
		{"", yui.OrderYMD},
		{"not a locale!", yui.OrderYMD},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, yui.DateOrderForLocale(tt.locale), tt.locale)
	}
}

func TestDateOrderFromFormat(t *testing.T) {
	assert.Equal(t, yui.OrderYMD, yui.DateOrderFromFormat("%Y-%m-%d"))
	assert.Equal(t, yui.OrderDMY, yui.DateOrderFromFormat("%d.%m.%Y"))
	assert.Equal(t, yui.OrderMDY, yui.DateOrderFromFormat("%m/%d/%y"))
	assert.Equal(t, yui.OrderDMY, yui.DateOrderFromFormat("%e %B %Y"))
	assert.Equal(t, yui.OrderYMD, yui.DateOrderFromFormat("no directives"))
}

func TestSystemLocalePrecedence(t *testing.T) {
	t.Setenv("LANG", "fr_FR.UTF-8")
	t.Setenv("LC_TIME", "")
	t.Setenv("LC_ALL", "")
	assert.Equal(t, "fr_FR.UTF-8", yui.SystemLocale())

	t.Setenv("LC_TIME", "en_US.UTF-8")
	assert.Equal(t, "en_US.UTF-8", yui.SystemLocale())

	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	assert.Equal(t, "ja_JP.UTF-8", yui.SystemLocale())
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, yui.IsLeapYear(2024))
	assert.True(t, yui.IsLeapYear(2000))
	assert.False(t, yui.IsLeapYear(1900))
	assert.False(t, yui.IsLeapYear(2023))
	assert.Equal(t, 29, yui.DaysIn(2024, 2))
	assert.Equal(t, 30, yui.DaysIn(2023, 9))
}
