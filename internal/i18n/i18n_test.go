package i18n

import (
	"testing"
)

func TestSetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{
			name: "设置英文",
			lang: "en",
			want: "en",
		},
		{
			name: "设置中文",
			lang: "zh",
			want: "zh",
		},
		{
			name: "设置无效语言",
			lang: "fr",
			want: "en", // 应保持不变
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 重置为默认语言
			currentLanguage = "en"

			SetLanguage(tt.lang)
			got := GetLanguage()

			if got != tt.want {
				t.Errorf("GetLanguage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		args []interface{}
		want string
	}{
		{
			name: "英文翻译",
			lang: "en",
			key:  "error.prefix_empty",
			want: "Prefix cannot be empty",
		},
		{
			name: "中文翻译",
			lang: "zh",
			key:  "status.done",
			want: "完成",
		},
		{
			name: "不存在的key",
			lang: "en",
			key:  "nonexistent_key",
			want: "nonexistent_key", // 返回key本身
		},
		{
			name: "带参数的翻译",
			lang: "en",
			key:  "help.not_found",
			args: []interface{}{"help.html"},
			want: `"help.html" not found`,
		},
		{
			name: "无效语言降级到英文",
			lang: "invalid",
			key:  "success",
			want: "Success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() { currentLanguage = "en" }()
			// 手动设置语言（包括无效语言）
			if tt.lang == "invalid" {
				currentLanguage = "invalid"
			} else {
				SetLanguage(tt.lang)
			}

			got := T(tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("T(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	// 验证所有中文key都有对应的英文翻译
	for key := range messages["en"] {
		if _, ok := messages["zh"][key]; !ok {
			t.Errorf("英文翻译key %v 在中文中不存在", key)
		}
	}

	// 验证所有英文key都有对应的中文翻译
	for key := range messages["zh"] {
		if _, ok := messages["en"][key]; !ok {
			t.Errorf("中文翻译key %v 在英文中不存在", key)
		}
	}
}
