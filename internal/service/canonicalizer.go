package service

import (
	"regexp"
	"strings"

	"github.com/avc-dev/terabis-bot/internal/config"
	"github.com/avc-dev/terabis-bot/internal/model"
)

// markerSegment - фрагмент пути, отличающий share-ссылку от прочих URL
const markerSegment = "/s/"

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Canonicalizer извлекает share-ссылки из текста и переписывает их
// в канонический вид для сервиса сокращения. Чистая функция, без зависимостей
type Canonicalizer struct {
	redirectBase config.URLPrefix
}

// NewCanonicalizer создает Canonicalizer с заданной базой редиректа
// База хранится вместе с завершающим "?url="
func NewCanonicalizer(redirectBase config.URLPrefix) *Canonicalizer {
	return &Canonicalizer{redirectBase: redirectBase}
}

// ExtractAndCanonicalize возвращает канонические ссылки в порядке появления в тексте
// URL без маркера /s/ молча отбрасываются; пустой результат - не ошибка
func (c *Canonicalizer) ExtractAndCanonicalize(text string) []model.CanonicalLink {
	var links []model.CanonicalLink

	for _, raw := range urlPattern.FindAllString(text, -1) {
		idx := strings.Index(raw, markerSegment)
		if idx < 0 {
			continue
		}

		// Все до маркера включительно заменяется базой редиректа
		rest := raw[idx+len(markerSegment):]
		links = append(links, model.CanonicalLink{
			RawURL:       raw,
			CanonicalURL: c.redirectBase.String() + rest,
		})
	}

	return links
}
