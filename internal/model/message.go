package model

// MediaKind определяет тип вложения входящего сообщения
type MediaKind string

const (
	MediaNone     MediaKind = ""
	MediaPhoto    MediaKind = "photo"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

// InboundMessage представляет входящее сообщение после нормализации транспортом
// Text содержит caption для медиа-сообщений
type InboundMessage struct {
	ChatID      int64
	MessageID   int64
	UserID      UserID
	DisplayName string
	Text        string
	Media       MediaKind
	// FileID вложения из входящего сообщения, переиспользуется в ответе
	FileID string
}

// OutboundReply представляет исходящий ответ
// Media и FileID заполняются только когда ответ несет вложение
type OutboundReply struct {
	ChatID   int64
	Text     string
	Media    MediaKind
	FileID   string
	Markdown bool
}

// BroadcastScope выбирает список получателей рассылки
type BroadcastScope string

const (
	// ScopeAll - все известные учетные записи
	ScopeAll BroadcastScope = "all"
	// ScopeCredentialed - только пользователи с подключенным ключом
	ScopeCredentialed BroadcastScope = "credentialed"
)

// CanonicalLink - результат канонизации одной распознанной ссылки
// Существует только на время обработки одного сообщения
type CanonicalLink struct {
	RawURL       string
	CanonicalURL string
}

// ShortenResult - сокращенная ссылка для одной канонической
type ShortenResult struct {
	CanonicalURL string
	ShortURL     string
}
