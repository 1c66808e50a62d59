package domain

import "context"

// ObjectStore persists an uploaded blob under key and returns a public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type UserUseCase interface {
	UploadAvatar(ctx context.Context, userUUID, imageData, fileName string) (string, error)
}
