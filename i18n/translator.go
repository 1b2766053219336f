package i18n

import "sync"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "limit").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"unsupported_token":   "unsupported token",
		"unterminated_string": "unterminated string",
		"malformed_number":    "malformed number",
		"unexpected_token":    "unexpected token",
		"colon_expected":      "colon expected",
		"unterminated_object": "unterminated object",
		"unterminated_array":  "unterminated array",
		"invalid_string":      "invalid string",
		"invalid_number":      "invalid number",
		"trailing_data":       "trailing data after value",
		"empty_input":         "empty input",
		"max_depth":           "max depth exceeded",
		"too_large":           "input too large",
	},
	"ja": {
		"unsupported_token":   "未対応のトークンです",
		"unterminated_string": "文字列が閉じられていません",
		"malformed_number":    "数値の形式が不正です",
		"unexpected_token":    "予期しないトークンです",
		"colon_expected":      "コロンが必要です",
		"unterminated_object": "オブジェクトが閉じられていません",
		"unterminated_array":  "配列が閉じられていません",
		"invalid_string":      "文字列が不正です",
		"invalid_number":      "数値が不正です",
		"trailing_data":       "値の後に余分なデータがあります",
		"empty_input":         "入力が空です",
		"max_depth":           "最大深さを超えました",
		"too_large":           "入力が大きすぎます",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if msg, ok := dict[t.lang][code]; ok {
		return msg
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
