package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/cullarr/internal/availability"
)

var testDirectory = []availability.Provider{
	{ID: 8, ClearName: "Netflix", ShortName: "nfx", TechnicalName: "netflix"},
	{ID: 15, ClearName: "Hulu", ShortName: "hlu", TechnicalName: "hulu"},
	{ID: 9, ClearName: "Amazon Prime Video", ShortName: "prv", TechnicalName: "amazonprime"},
	{ID: 337, ClearName: "Disney Plus", ShortName: "dnp", TechnicalName: "disneyplus"},
}

var testLocales = []availability.Locale{
	{FullLocale: "en_US", Country: "United States", ISO3166: "US"},
	{FullLocale: "en_GB", Country: "United Kingdom", ISO3166: "GB"},
	{FullLocale: "de_DE", Country: "Germany", ISO3166: "DE"},
	{FullLocale: "nl_NL", Country: "Netherlands", ISO3166: "NL"},
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "en_US", "en_US"},
		{"case insensitive", "EN_us", "en_US"},
		{"hyphenated", "de-DE", "de_DE"},
		{"bare country code", "NL", "nl_NL"},
		{"bare language", "de", "de_DE"},
		{"empty falls back", "", "en_US"},
		{"unsupported falls back", "xx_XX", "en_US"},
		{"garbage falls back", "not a locale", "en_US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocale(tt.input, testLocales))
		})
	}
}

func TestResolve(t *testing.T) {
	set, unknown := Resolve([]string{"netflix", "Hulu"}, testDirectory)

	assert.Empty(t, unknown)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(8))
	assert.True(t, set.Contains(15))
	assert.Equal(t, []string{"Hulu", "Netflix"}, set.Names())
}

func TestResolveShortName(t *testing.T) {
	set, unknown := Resolve([]string{"prv"}, testDirectory)

	assert.Empty(t, unknown)
	assert.True(t, set.Contains(9))
}

func TestResolveUnknown(t *testing.T) {
	set, unknown := Resolve([]string{"Netflix", "notaprovider"}, testDirectory)

	assert.Equal(t, []string{"notaprovider"}, unknown)
	assert.Len(t, set, 1)
}

func TestResolveEmpty(t *testing.T) {
	set, unknown := Resolve(nil, testDirectory)

	assert.Empty(t, unknown)
	assert.Empty(t, set)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"netflx", "Netflix"},
		{"disney+", "Disney Plus"},
		{"huluu", "Hulu"},
		{"zzzzzz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, testDirectory))
		})
	}
}

func TestFilter(t *testing.T) {
	offers := []availability.Offer{
		{ProviderID: 8, ClearName: "Netflix", MonetizationType: availability.MonetizationFlatrate},
		{ProviderID: 119, ClearName: "Amazon Prime Video", MonetizationType: availability.MonetizationFlatrate},
		{ProviderID: 15, ClearName: "Hulu", MonetizationType: availability.MonetizationFlatrate},
	}

	set, _ := Resolve([]string{"Netflix", "Hulu"}, testDirectory)
	matched := set.Filter(offers)

	assert.Len(t, matched, 2)
	assert.Equal(t, []string{"Hulu", "Netflix"}, set.ClearNames(matched))
}

func TestFilterEmptySetKeepsNothing(t *testing.T) {
	offers := []availability.Offer{
		{ProviderID: 8, ClearName: "Netflix"},
	}

	var set Set
	assert.Empty(t, set.Filter(offers))
}

func TestClearNamesDeduplicates(t *testing.T) {
	offers := []availability.Offer{
		{ProviderID: 8, PresentationType: "4k"},
		{ProviderID: 8, PresentationType: "hd"},
	}

	set, _ := Resolve([]string{"Netflix"}, testDirectory)
	assert.Equal(t, []string{"Netflix"}, set.ClearNames(offers))
}
