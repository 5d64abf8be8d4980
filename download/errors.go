package download

import "fmt"

// Stages a transfer can fail in.
const (
	StageMedia     = "media"
	StageThumbnail = "thumbnail"
)

// TransferError records a single failed transfer. Batch operations collect
// these instead of aborting, so one broken video never sinks a run.
type TransferError struct {
	VideoID string
	Stage   string
	Cause   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("download %s of %s: %s", e.Stage, e.VideoID, e.Cause)
}

func (e *TransferError) Unwrap() error {
	return e.Cause
}
