package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"github.com/google/uuid"
)

type userUseCase struct {
	userRepo domain.UserRepository
	store    domain.ObjectStore
}

func NewUserUseCase(userRepo domain.UserRepository, store domain.ObjectStore) domain.UserUseCase {
	return &userUseCase{userRepo: userRepo, store: store}
}

// UploadAvatar decodes a base64 data URL, stores the blob and points the
// profile's avatar at the resulting URL.
func (s *userUseCase) UploadAvatar(ctx context.Context, userUUID, imageData, fileName string) (string, error) {
	if _, err := s.userRepo.GetUserByUUID(ctx, userUUID); err != nil {
		return "", domain.ErrUserNotFound
	}

	data, contentType, err := decodeDataURL(imageData)
	if err != nil {
		return "", domain.ErrInvalidImage
	}

	key := fmt.Sprintf("avatars/%s/%s-%s", userUUID, uuid.NewString(), filepath.Base(fileName))
	avatarURL, err := s.store.Put(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if _, err := s.userRepo.SetAvatar(ctx, userUUID, avatarURL); err != nil {
		return "", err
	}
	return avatarURL, nil
}

// decodeDataURL accepts "data:image/png;base64,...." or a bare base64 string.
func decodeDataURL(imageData string) ([]byte, string, error) {
	contentType := "image/jpeg"
	payload := imageData

	if strings.HasPrefix(imageData, "data:") {
		parts := strings.SplitN(imageData, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data url")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		if i := strings.Index(meta, ";"); i > 0 {
			contentType = meta[:i]
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}
	return data, contentType, nil
}
