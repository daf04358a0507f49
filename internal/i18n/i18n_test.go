package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSelectLanguage(t *testing.T) {
	tests := []struct {
		cands []string
		want  language.Tag
	}{
		{nil, language.English},
		{[]string{"zh_CN.UTF-8"}, language.Chinese},
		{[]string{"zh-Hans"}, language.Chinese},
		{[]string{"en_US.UTF-8"}, language.English},
		{[]string{"C", "POSIX", "zh_CN"}, language.Chinese},
		{[]string{"de_DE@euro"}, language.English},
		{[]string{"not a locale!!"}, language.English},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, selectLanguage(tt.cands), "%v", tt.cands)
	}
}

func TestCandidates_OverrideFirst(t *testing.T) {
	t.Setenv("APKSCOPE_LANG", "en")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "zh_CN.UTF-8")

	assert.Equal(t, []string{"zh", "en", "zh_CN.UTF-8"}, candidates(" zh "))
}

func TestT(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, language.English, CurrentLanguage())
	assert.Equal(t, "Package: com.example", T("summary.package", map[string]interface{}{"Name": "com.example"}))
	assert.Equal(t, "no.such.message", T("no.such.message"))

	require.NoError(t, Init("zh"))
	assert.Equal(t, language.Chinese, CurrentLanguage())
	assert.NotEqual(t, "Unknown", T("summary.unknownPackage"))
	assert.NotEqual(t, "summary.unknownPackage", T("summary.unknownPackage"))

	require.NoError(t, Init("en"))
}
