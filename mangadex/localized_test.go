package mangadex

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLocalizedString_Best(t *testing.T) {
	tests := []struct {
		name   string
		text   LocalizedString
		prefs  []language.Tag
		want   string
		wantOk bool
	}{
		{
			name:   "Exact preference",
			text:   LocalizedString{"en": "Solo Leveling", "ko": "나 혼자만 레벨업"},
			prefs:  []language.Tag{language.Korean},
			want:   "나 혼자만 레벨업",
			wantOk: true,
		},
		{
			name:   "Second preference used",
			text:   LocalizedString{"en": "Solo Leveling", "ko": "나 혼자만 레벨업"},
			prefs:  []language.Tag{language.Korean, language.English},
			want:   "나 혼자만 레벨업",
			wantOk: true,
		},
		{
			name:   "No preferences falls back to english",
			text:   LocalizedString{"en": "Solo Leveling", "ko": "나 혼자만 레벨업"},
			want:   "Solo Leveling",
			wantOk: true,
		},
		{
			name:   "No english falls back to lowest key",
			text:   LocalizedString{"zh": "我独自升级", "ko": "나 혼자만 레벨업"},
			want:   "나 혼자만 레벨업",
			wantOk: true,
		},
		{
			name:   "Single entry",
			text:   LocalizedString{"ja": "俺だけレベルアップな件"},
			prefs:  []language.Tag{language.English},
			want:   "俺だけレベルアップな件",
			wantOk: true,
		},
		{
			name:   "Empty",
			text:   LocalizedString{},
			prefs:  []language.Tag{language.English},
			want:   "",
			wantOk: false,
		},
		{
			name:   "Nil",
			text:   nil,
			want:   "",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.text.Best(tt.prefs...)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("Best() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
