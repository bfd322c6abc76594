// Package generator wires the QR pipeline together: color normalization,
// encoding and rasterization, optional logo compositing, and artifact
// persistence.
//
// Generate is a single synchronous pass with no retries. An empty payload is
// an explicit "nothing requested" outcome, not an error; every other failure
// aborts the call and surfaces the originating sentinel from pkg/colorx,
// pkg/qrcode, or pkg/storage unchanged, so callers can match the failure kind
// with errors.Is.
//
// A Service holds no mutable state between calls and is safe for concurrent
// use; uniqueness of artifact names is the only cross-call coordination.
package generator
