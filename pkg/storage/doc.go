// Package storage provides read access to input files (CSV data and email
// templates) on the local filesystem or in S3-compatible object storage.
//
// # Basic Usage
//
// Local paths are served by Local, s3:// URIs by S3Storage. Router picks the
// backend by the key's scheme so callers can accept either form:
//
//	remote, err := storage.NewS3(ctx, storage.Config{
//		Region:    "eu-central-1",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store := storage.NewRouter(storage.NewLocal(""), remote)
//
//	rc, err := store.Get(ctx, "s3://quotes/daily.csv")
//	if errors.Is(err, storage.ErrNotFound) {
//		// nothing to read
//	}
//	defer rc.Close()
//
// When AccessKey and SecretKey are empty, S3Storage falls back to the default
// AWS credential chain (environment, shared config, instance role).
//
// # Errors
//
// Both backends report a missing file as ErrNotFound. Every other failure is
// wrapped with ErrReadFailed or ErrAccessDenied so callers can tell "nothing
// there" apart from "could not read it".
package storage
