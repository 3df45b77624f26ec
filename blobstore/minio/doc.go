// Package minio implements blobstore.BlobStore on MinIO and other
// S3-compatible object stores using github.com/minio/minio-go/v7.
//
//	client, _ := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "palettes", "prod/")
package minio
