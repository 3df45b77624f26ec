// Package s3 implements blobstore.BlobStore on Amazon S3 using the AWS SDK
// for Go v2.
//
//	store, err := s3.New(ctx, "my-bucket", s3.WithPrefix("palettes/"))
//
// Writes go through the S3 upload manager; reads use ranged GetObject calls.
package s3
