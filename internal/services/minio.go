package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"delices_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// bucket retourne le bucket des images du menu.
func bucket() string {
	b := os.Getenv("MINIO_BUCKET")
	if b == "" {
		b = "delices-images"
	}
	return b
}

// UploadProductImage envoie une photo de plat dans MinIO et retourne le
// chemin objet stocké avec le produit.
func UploadProductImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := path.Join("products", file.Filename)
	_, err = database.MinIO.PutObject(ctx, bucket(), objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", bucket(), objectName), nil
}

// GenerateSignedURL génère une URL signée à durée limitée pour une image.
// Accepte soit un chemin objet ("bucket/products/x.jpg"), soit une URL
// complète héritée d'un ancien import.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	key := objectPath
	if i := strings.Index(key, bucket()+"/"); i >= 0 {
		key = key[i+len(bucket())+1:]
	}

	reqParams := make(url.Values)
	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket(), key, duration, reqParams)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
