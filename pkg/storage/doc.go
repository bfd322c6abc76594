// Package storage persists generated QR code images as uniquely named PNG
// artifacts.
//
// Every Save call produces a fresh artifact named qr_code_<128-bit-hex>.png.
// Random names are the only concurrency mechanism: concurrent callers can
// share one storage location without locking because no call ever writes to
// another call's name. Artifacts are never deleted by this package; cleanup
// is an external concern.
//
// Two backends implement the Storage interface:
//
//   - LocalStorage writes to a directory on the local filesystem. Writes go
//     to a temporary name first and are atomically renamed, so a failed write
//     never leaves a file that could be mistaken for a finished artifact.
//   - S3Storage writes to an S3 (or S3-compatible) bucket, where object
//     uploads are already atomic.
//
// Failures are reported through package-level sentinel errors and can be
// matched with errors.Is.
package storage
