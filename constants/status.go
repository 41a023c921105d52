package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusExtracted JobStatus = "EXTRACTED" // fields extracted, record assembled
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// DocStatus tags the per-document extraction outcome surfaced in the export.
// A sparse row is still emitted for UNCLASSIFIED and UNREADABLE documents.
type DocStatus string

const (
	DocStatusOK           DocStatus = "OK"
	DocStatusUnclassified DocStatus = "UNCLASSIFIED"
	DocStatusUnreadable   DocStatus = "UNREADABLE"
)
