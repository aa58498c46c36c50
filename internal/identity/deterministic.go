package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const (
	postPrefix  = "folio:post:"
	titlePrefix = "folio:title:"
	tokenLength = 12
)

// UUID derives a deterministic UUID from key with go-hashid, falling back to
// a name-based SHA1 UUID if hashing fails. Blank keys map to uuid.Nil. Keys
// are hashed as given: "posts/a_b.md" and "posts/ab.md" stay distinct.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(false))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID identifies a post by the source key handed over by the content
// collaborator (usually its file path). Path separators are normalized so the
// same file yields the same ID on every platform.
func PostUUID(source string) uuid.UUID {
	normalized := strings.ReplaceAll(strings.TrimSpace(source), "\\", "/")
	if normalized == "" {
		return uuid.Nil
	}
	return UUID(postPrefix + normalized)
}

// TitleUUID identifies a post that has no source key by its raw title.
func TitleUUID(title string) uuid.UUID {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return uuid.Nil
	}
	return UUID(titlePrefix + trimmed)
}

// Token returns a short lowercase hex token for id, usable as a URL path
// segment. uuid.Nil yields "".
func Token(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return strings.ReplaceAll(id.String(), "-", "")[:tokenLength]
}
